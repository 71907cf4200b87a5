package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.Theme != "auto" {
		t.Errorf("Expected theme auto, got %q", cfg.UI.Theme)
	}
	if !cfg.UI.ShowDates {
		t.Error("Expected show_dates on by default")
	}
	if cfg.Stash.IncludeUntracked {
		t.Error("Expected include_untracked off by default")
	}
	if cfg.Keys.Up != "up,k" {
		t.Errorf("Expected default up binding, got %q", cfg.Keys.Up)
	}
	if cfg.Keys.Quit != "q,esc,ctrl+c" {
		t.Errorf("Expected default quit binding, got %q", cfg.Keys.Quit)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing file should fall back to defaults, got %v", err)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("Expected defaults, got theme %q", cfg.UI.Theme)
	}
}

func TestLoadFromPathOverrides(t *testing.T) {
	content := `
[ui]
theme = "dark"
show_dates = false

[stash]
include_untracked = true

[keys]
up = "up,k,w"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.UI.Theme != "dark" {
		t.Errorf("Expected theme dark, got %q", cfg.UI.Theme)
	}
	if cfg.UI.ShowDates {
		t.Error("Expected show_dates overridden to false")
	}
	if !cfg.Stash.IncludeUntracked {
		t.Error("Expected include_untracked overridden to true")
	}
	if cfg.Keys.Up != "up,k,w" {
		t.Errorf("Expected overridden up binding, got %q", cfg.Keys.Up)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Keys.Down != "down,j" {
		t.Errorf("Expected default down binding, got %q", cfg.Keys.Down)
	}
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid\ntoml"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected an error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if warnings := cfg.Validate(); len(warnings) != 0 {
		t.Errorf("Default config should validate cleanly, got %v", warnings)
	}

	cfg.UI.Theme = "solarized"
	warnings := cfg.Validate()
	if len(warnings) != 1 {
		t.Fatalf("Expected one warning, got %v", warnings)
	}
}

func TestConfigPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "stashtui", "config.toml")
	if got := ConfigPath(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
