package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	// Falls back to the placeholder secret rather than refusing to start.
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("JWT_EXPIRY", "24h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("PORT", "9090")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "real-secret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 12, cfg.BcryptCost)
}
