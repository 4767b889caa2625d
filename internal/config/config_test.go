package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if !cfg.StrictSlugs {
		t.Error("StrictSlugs should default to true")
	}
	if !cfg.Recursive {
		t.Error("Recursive should default to true")
	}
	if cfg.Pattern != "*.md" {
		t.Errorf("Pattern = %q", cfg.Pattern)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pressroom.toml")
	content := `
content_dir = "posts"
workers = 2
strict_slugs = false
port = "9000"
watch_debounce = "2s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ContentDir != "posts" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.StrictSlugs {
		t.Error("StrictSlugs should be false")
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.WatchDebounce != 2*time.Second {
		t.Errorf("WatchDebounce = %v", cfg.WatchDebounce)
	}
	// Unset keys keep defaults.
	if cfg.Pattern != "*.md" {
		t.Errorf("Pattern = %q", cfg.Pattern)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pressroom.toml")
	if err := os.WriteFile(path, []byte("port = \"9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PRESSROOM_PORT", "9001")
	t.Setenv("PRESSROOM_STRICT_SLUGS", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9001" {
		t.Errorf("Port = %q, want env override 9001", cfg.Port)
	}
	if cfg.StrictSlugs {
		t.Error("StrictSlugs should be overridden to false")
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_BadDebounceFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pressroom.toml")
	if err := os.WriteFile(path, []byte("watch_debounce = \"soon\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for bad duration")
	}
}
