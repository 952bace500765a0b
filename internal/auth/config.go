package auth

import (
	"time"
)

type Config struct {
	TokenSecret string        `envconfig:"AUTH_TOKEN_SECRET" toml:"token_secret"`
	TokenTTL    time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"24h" toml:"token_ttl"`
	TokenIssuer string        `envconfig:"AUTH_TOKEN_ISSUER" default:"buddypay" toml:"token_issuer"`
	BcryptCost  int           `envconfig:"AUTH_BCRYPT_COST" default:"10" toml:"bcrypt_cost"`
}
