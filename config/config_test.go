package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultTickInterval, cfg.TickInterval)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.CatalogURL)
	assert.False(t, cfg.SeedDatabase)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"ADDR":          "127.0.0.1:8080",
		"DATABASE_URL":  "postgres://localhost/shop",
		"CATALOG_URL":   "http://localhost:8080/api/products",
		"TICK_INTERVAL": "250ms",
		"LOG_LEVEL":     "debug",
		"SEED_DATABASE": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "postgres://localhost/shop", cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:8080/api/products", cfg.CatalogURL)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.SeedDatabase)
}

func TestFromEnvRejectsBadTickInterval(t *testing.T) {
	for _, raw := range []string{"soon", "0s", "-1s"} {
		_, err := FromEnv(envOf(map[string]string{"TICK_INTERVAL": raw}))
		assert.ErrorIs(t, err, ErrInvalidTickInterval, raw)
	}
}

func TestFromEnvRejectsBadSeedFlag(t *testing.T) {
	_, err := FromEnv(envOf(map[string]string{"SEED_DATABASE": "maybe"}))
	assert.Error(t, err)
}
