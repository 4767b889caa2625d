// Package config loads pressroom configuration: defaults, then an optional
// TOML file, then environment-variable overrides, in that precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// ContentDir is the corpus root.
	ContentDir string `toml:"content_dir"`
	// Pattern filters discovered files by base-name glob.
	Pattern string `toml:"pattern"`
	// Recursive controls directory traversal under ContentDir.
	Recursive bool `toml:"recursive"`

	// Workers bounds the parse worker pool; 0 means one per CPU.
	Workers int `toml:"workers"`
	// StrictSlugs makes slug collisions fatal for the whole run.
	StrictSlugs bool `toml:"strict_slugs"`

	// Port is the query API listen port.
	Port string `toml:"port"`
	// APIKey, when set, gates the /api routes behind bearer auth.
	APIKey string `toml:"api_key"`

	// WatchDebounce coalesces filesystem events before a rebuild.
	WatchDebounce time.Duration `toml:"-"`
}

// fileConfig mirrors Config for TOML decoding; the debounce is a duration
// string in the file.
type fileConfig struct {
	ContentDir    *string `toml:"content_dir"`
	Pattern       *string `toml:"pattern"`
	Recursive     *bool   `toml:"recursive"`
	Workers       *int    `toml:"workers"`
	StrictSlugs   *bool   `toml:"strict_slugs"`
	Port          *string `toml:"port"`
	APIKey        *string `toml:"api_key"`
	WatchDebounce *string `toml:"watch_debounce"`
}

func Default() Config {
	return Config{
		ContentDir:    "content",
		Pattern:       "*.md",
		Recursive:     true,
		Workers:       0,
		StrictSlugs:   true,
		Port:          "8095",
		WatchDebounce: 500 * time.Millisecond,
	}
}

// Load builds the effective configuration. path may be empty; a missing
// file at an explicitly-given path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		var fc fileConfig
		if err := toml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := cfg.applyFile(fc); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(fc fileConfig) error {
	if fc.ContentDir != nil {
		c.ContentDir = *fc.ContentDir
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.Recursive != nil {
		c.Recursive = *fc.Recursive
	}
	if fc.Workers != nil {
		c.Workers = *fc.Workers
	}
	if fc.StrictSlugs != nil {
		c.StrictSlugs = *fc.StrictSlugs
	}
	if fc.Port != nil {
		c.Port = *fc.Port
	}
	if fc.APIKey != nil {
		c.APIKey = *fc.APIKey
	}
	if fc.WatchDebounce != nil {
		d, err := time.ParseDuration(*fc.WatchDebounce)
		if err != nil {
			return fmt.Errorf("watch_debounce: %w", err)
		}
		c.WatchDebounce = d
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ContentDir = envOr("PRESSROOM_CONTENT_DIR", c.ContentDir)
	c.Pattern = envOr("PRESSROOM_PATTERN", c.Pattern)
	c.Recursive = envBool("PRESSROOM_RECURSIVE", c.Recursive)
	c.Workers = envInt("PRESSROOM_WORKERS", c.Workers)
	c.StrictSlugs = envBool("PRESSROOM_STRICT_SLUGS", c.StrictSlugs)
	c.Port = envOr("PRESSROOM_PORT", c.Port)
	c.APIKey = envOr("PRESSROOM_API_KEY", c.APIKey)
	c.WatchDebounce = envDuration("PRESSROOM_WATCH_DEBOUNCE", c.WatchDebounce)
}

func (c Config) Validate() error {
	if c.ContentDir == "" {
		return fmt.Errorf("content_dir is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0")
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("watch_debounce must be positive")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
