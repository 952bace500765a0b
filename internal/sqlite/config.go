package sqlite

import (
	"time"
)

type Config struct {
	DatabasePath    string        `envconfig:"DATABASE_PATH" default:"buddypay.db" toml:"database_path"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25" toml:"max_open_conns"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5" toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m" toml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `envconfig:"CONN_MAX_IDLE_TIME" default:"1m" toml:"conn_max_idle_time"`
	BusyTimeout     time.Duration `envconfig:"BUSY_TIMEOUT" default:"30s" toml:"busy_timeout"` // Time to wait for lock acquisition
	EnableWAL       bool          `envconfig:"ENABLE_WAL" default:"true" toml:"enable_wal"`    // Allows concurrent reads while writing
	ForeignKeys     bool          `envconfig:"FOREIGN_KEYS" default:"true" toml:"foreign_keys"`
}
