package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,https://beta.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "postgres://localhost/app", cfg.DatabaseDSN)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://app.example.com", "https://beta.example.com"}, cfg.ExtraOrigins)
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{
		ClientURL:    "https://app.example.com",
		ExtraOrigins: []string{" https://staging.example.com ", "", "https://beta.example.com"},
	}

	origins := cfg.CORSOrigins()

	assert.Contains(t, origins, "http://localhost:3000")
	assert.Contains(t, origins, "http://localhost:5173")
	assert.Contains(t, origins, "https://app.example.com")
	assert.Contains(t, origins, "https://staging.example.com")
	assert.Contains(t, origins, "https://beta.example.com")
	assert.Len(t, origins, 5)
}

func TestCORSOriginsDefaultsOnly(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, defaultOrigins, cfg.CORSOrigins())
}
