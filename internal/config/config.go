// Package config loads process configuration from the environment. A .env
// file is honored when present; real environment variables win.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"3000"`

	// DatabaseDSN is the Postgres connection string.
	DatabaseDSN string `env:"DATABASE_URL,required"`

	// JWTSecret signs session tokens. It is read once here and passed to
	// the token issuer explicitly.
	JWTSecret string `env:"JWT_SECRET,required"`

	// ClientURL is an extra CORS origin for the deployed frontend.
	ClientURL string `env:"CLIENT_URL"`

	// ExtraOrigins lists additional allowed CORS origins.
	ExtraOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Default allowed origins for development
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// CORSOrigins returns the allowed origins: the development defaults plus
// whatever the environment adds.
func (c *Config) CORSOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if c.ClientURL != "" {
		origins = append(origins, c.ClientURL)
	}

	for _, origin := range c.ExtraOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (*Config, error) {
	// A missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load()

	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &cfg, nil
}
