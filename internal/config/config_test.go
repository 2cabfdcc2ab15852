package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tripflow/backend/internal/config"
)

// TestLoad_defaults verifies that every value falls back to its
// local-development default on a bare environment.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := config.Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	require.Equal(t, "tripflow_dev", cfg.DBName)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "tripflow_prod")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := config.Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "mongodb://db:27017", cfg.MongoURL)
	require.Equal(t, "tripflow_prod", cfg.DBName)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}
