package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	for k, v := range map[string]string{
		"APP_ENV":    "test",
		"APP_PORT":   "8080",
		"DB_USER":    "trainee",
		"DB_HOST":    "localhost",
		"DB_PORT":    "3306",
		"DB_NAME":    "trainees",
		"JWT_SECRET": "test-secret",
	} {
		t.Setenv(k, v)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	// Tunables are optional; unset values fall back to defaults.
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("ACCESS_TOKEN_TTL_DAYS", "")

	cfg := Load()
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Equal(t, 7, cfg.AccessTTLDays)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
}

func TestLoadTunablesFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("ACCESS_TOKEN_TTL_DAYS", "14")

	cfg := Load()
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 14, cfg.AccessTTLDays)
}
