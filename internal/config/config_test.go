package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "DATABASE_URL", "TIMEZONE", "FETCH_TIMEOUT_SECONDS",
		"THUMBNAIL_MAX_EDGE", "THUMBNAIL_QUALITY", "ROLLOVER_AT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "daily_journal.db", cfg.DatabaseURL)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeoutDuration())
	assert.Equal(t, 800, cfg.ThumbnailMaxEdge)
	assert.Equal(t, 80, cfg.ThumbnailQuality)
	assert.Equal(t, "00:05", cfg.RolloverAt)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", ":memory:")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.DatabaseURL)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeoutDuration())
	assert.Equal(t, "DEBUG", cfg.SlogLevel().String())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "journal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"database_url: /var/lib/journal.db\nthumbnail_max_edge: 400\nrollover_at: \"06:30\"\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("THUMBNAIL_MAX_EDGE", "640")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/journal.db", cfg.DatabaseURL)
	assert.Equal(t, 640, cfg.ThumbnailMaxEdge, "env overrides the file")
	assert.Equal(t, "06:30", cfg.RolloverAt)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"TIMEZONE":              "Mars/Olympus",
		"FETCH_TIMEOUT_SECONDS": "0",
		"THUMBNAIL_QUALITY":     "101",
		"THUMBNAIL_MAX_EDGE":    "big",
		"ROLLOVER_AT":           "25:00",
		"LOG_LEVEL":             "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
