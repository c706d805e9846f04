package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("auth-service", "3001")
	require.NoError(t, err)

	assert.Equal(t, "auth-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:3001", cfg.App.Addr())
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, "http://localhost:3001", cfg.Gateway.AuthServiceURL)
	assert.Equal(t, "http://localhost:3002", cfg.Gateway.VendorServiceURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL_HOURS", "1")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load("vendor-service", "3002")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 1, cfg.Auth.TokenTTLHours)
	assert.False(t, cfg.Postgres.RunMigrations)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("AUTH_BCRYPT_COST", "not-a-number")

	cfg, err := Load("auth-service", "3001")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}
