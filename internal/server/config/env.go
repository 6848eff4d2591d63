package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with pointer fields so that unset variables do
// not clobber values from earlier overlay stages.
type envConfig struct {
	EndpointAddrHTTP      *string        `env:"ADDRESS"`
	DatabaseDSN           *string        `env:"DATABASE_DSN"`
	SecretKey             *string        `env:"SECRET_KEY"`
	TokenValidityDuration *time.Duration `env:"TOKEN_VALIDITY_DURATION"`
	CORSAllowedOrigins    []string       `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	RateLimitRPS          *float64       `env:"RATE_LIMIT_RPS"`
	RateLimitBurst        *int           `env:"RATE_LIMIT_BURST"`
}

// parseEnv overlays configuration from environment variables. Malformed
// values panic for the same reason parseJson does.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = *c.TokenValidityDuration
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.RateLimitRPS != nil {
		config.RateLimitRPS = *c.RateLimitRPS
	}
	if c.RateLimitBurst != nil {
		config.RateLimitBurst = *c.RateLimitBurst
	}
}
