package http

import (
	"time"
)

type Config struct {
	Address         string        `envconfig:"HTTP_ADDRESS" default:"localhost:8080" toml:"address"`
	Timeout         time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" toml:"timeout"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"15s" toml:"shutdown_timeout"`
}
