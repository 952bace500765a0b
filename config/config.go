package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"buddypay/internal/auth"
	"buddypay/internal/http"
	"buddypay/internal/sqlite"
)

type Config struct {
	LogLevel int           `envconfig:"LOG_LEVEL" default:"-4" toml:"log_level"`
	Database sqlite.Config `toml:"database"`
	HTTP     http.Config   `toml:"http"`
	Auth     auth.Config   `toml:"auth"`
}

// Load reads the environment, then overlays the TOML file at path when path
// is not empty. Keys present in the file win over the environment.
func Load(path string) (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	if path != "" {
		if _, err = toml.DecodeFile(path, &config); err != nil {
			return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	if err = config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	if c.Auth.TokenSecret == "" {
		return errors.New("auth token secret is required (AUTH_TOKEN_SECRET or [auth].token_secret)")
	}

	if c.Database.DatabasePath == "" {
		return errors.New("database path is required")
	}

	return nil
}
