package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "friender", cfg.DBName)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_NAME", "friender_test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "friender_test", cfg.DBName)
}

func TestValidateProductionRules(t *testing.T) {
	base := Config{
		Port:       "8080",
		JWTSecret:  "a-sufficiently-long-production-secret!!",
		DBPassword: "strong-password",
		Env:        "production",
	}
	assert.NoError(t, base.Validate())

	defaultSecret := base
	defaultSecret.JWTSecret = "your-secret-key-change-in-production"
	assert.Error(t, defaultSecret.Validate())

	shortSecret := base
	shortSecret.JWTSecret = "short"
	assert.Error(t, shortSecret.Validate())

	weakDBPass := base
	weakDBPass.DBPassword = "password"
	assert.Error(t, weakDBPass.Validate())

	noPort := base
	noPort.Port = ""
	assert.Error(t, noPort.Validate())
}

func TestValidateDevelopmentIsLenient(t *testing.T) {
	cfg := Config{Port: "8080", JWTSecret: "dev-secret", Env: "development"}
	assert.NoError(t, cfg.Validate())
}
