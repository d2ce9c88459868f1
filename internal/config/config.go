package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config keeps runtime settings for the journal.
type Config struct {
	DatabaseURL      string `yaml:"database_url"`
	Timezone         string `yaml:"timezone"`
	FetchTimeout     int    `yaml:"fetch_timeout_seconds"`
	ThumbnailMaxEdge int    `yaml:"thumbnail_max_edge"`
	ThumbnailQuality int    `yaml:"thumbnail_quality"`
	RolloverAt       string `yaml:"rollover_at"`
	LogLevel         string `yaml:"log_level"`

	// Location is resolved from Timezone by Load.
	Location *time.Location `yaml:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DatabaseURL:      "daily_journal.db",
		Timezone:         "Local",
		FetchTimeout:     10,
		ThumbnailMaxEdge: 800,
		ThumbnailQuality: 80,
		RolloverAt:       "00:05",
		LogLevel:         "info",
	}
}

// Load reads configuration from CONFIG_FILE (optional YAML) and environment
// variables, in that order, on top of the defaults.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return cfg, err
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FetchTimeoutDuration returns the URL ingest timeout.
func (c Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.Timezone, "TIMEZONE")
	setString(&c.RolloverAt, "ROLLOVER_AT")
	setString(&c.LogLevel, "LOG_LEVEL")

	for key, dst := range map[string]*int{
		"FETCH_TIMEOUT_SECONDS": &c.FetchTimeout,
		"THUMBNAIL_MAX_EDGE":    &c.ThumbnailMaxEdge,
		"THUMBNAIL_QUALITY":     &c.ThumbnailQuality,
	} {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}
	return nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		c.DatabaseURL = Default().DatabaseURL
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %d", c.FetchTimeout)
	}
	if c.ThumbnailMaxEdge <= 0 {
		return fmt.Errorf("thumbnail max edge must be positive, got %d", c.ThumbnailMaxEdge)
	}
	if c.ThumbnailQuality < 1 || c.ThumbnailQuality > 100 {
		return fmt.Errorf("thumbnail quality must be within 1..100, got %d", c.ThumbnailQuality)
	}
	if _, _, err := parseClock(c.RolloverAt); err != nil {
		return err
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func parseClock(raw string) (int, int, error) {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return 0, 0, fmt.Errorf("rollover time %q, expected HH:MM", raw)
	}
	return t.Hour(), t.Minute(), nil
}
