package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// Client owns the connection pool of the ledger database.
type Client struct {
	db *sql.DB
}

func NewClient(ctx context.Context, config Config) (*Client, error) {
	db, err := sql.Open(driverName, buildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database %s: %w", config.DatabasePath, err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach ledger database %s: %w", config.DatabasePath, err)
	}

	return &Client{db: db}, nil
}

// buildDSN renders the go-sqlite3 connection string. _txlock=immediate makes
// BeginTx issue BEGIN IMMEDIATE, which Store.Atomic relies on for balance
// isolation.
func buildDSN(config Config) string {
	params := []string{
		"_busy_timeout=" + strconv.FormatInt(config.BusyTimeout.Milliseconds(), 10),
		"_txlock=immediate",
	}
	if config.EnableWAL {
		params = append(params, "_journal_mode=WAL")
	}
	if config.ForeignKeys {
		params = append(params, "_foreign_keys=1")
	}

	return "file:" + config.DatabasePath + "?" + strings.Join(params, "&")
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
