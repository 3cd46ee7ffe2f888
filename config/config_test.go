// File: /config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the test and restores the original value afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "LOG_LEVEL", "SEED_DATA", "STATS_INTERVAL", "DEFAULT_PAGE_LIMIT", "MAX_PAGE_LIMIT")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, time.Minute, cfg.StatsInterval)
	assert.Equal(t, 10, cfg.DefaultPageLimit)
	assert.Equal(t, 50, cfg.MaxPageLimit)
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, "PORT", "LOG_LEVEL", "SEED_DATA", "MAX_PAGE_LIMIT")
	t.Setenv("LOG_FORMAT", "json")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nLOG_LEVEL=debug\nSEED_DATA=false\nMAX_PAGE_LIMIT=abc\nLOG_FORMAT=text\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg := Load(envFile)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, 50, cfg.MaxPageLimit)
	// the process environment wins over the file
	assert.Equal(t, "json", cfg.LogFormat)
}
