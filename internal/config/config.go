// Package config handles stashtui configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents stashtui configuration.
type Config struct {
	UI    UIConfig    `toml:"ui"`
	Stash StashConfig `toml:"stash"`
	Keys  KeysConfig  `toml:"keys"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show relative dates in the stash list
	ShowDates bool `toml:"show_dates"`
}

// StashConfig contains stash operation defaults.
type StashConfig struct {
	// Default for the include-untracked flag in the new-stash form
	IncludeUntracked bool `toml:"include_untracked"`
}

// KeysConfig contains keybinding settings.
// Each value is a comma-separated list of keys.
type KeysConfig struct {
	Up     string `toml:"up"`
	Down   string `toml:"down"`
	Diff   string `toml:"diff"`
	Files  string `toml:"files"`
	Apply  string `toml:"apply"`
	Pop    string `toml:"pop"`
	Drop   string `toml:"drop"`
	New    string `toml:"new"`
	Search string `toml:"search"`
	Clear  string `toml:"clear"`
	Quit   string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:     "auto",
			ShowDates: true,
		},
		Stash: StashConfig{
			IncludeUntracked: false,
		},
		Keys: KeysConfig{
			Up:     "up,k",
			Down:   "down,j",
			Diff:   "enter,d",
			Files:  "f",
			Apply:  "a",
			Pop:    "p",
			Drop:   "x,delete",
			New:    "n",
			Search: "/",
			Clear:  "c",
			Quit:   "q,esc,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/stashtui/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "stashtui", "config.toml")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "stashtui", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "stashtui", "config.toml")
	}
	return filepath.Join(configDir, "stashtui", "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal directly into the default config.
	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to the config file.
func Save(cfg *Config) error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.UI.Theme != "" &&
		c.UI.Theme != "auto" &&
		c.UI.Theme != "dark" &&
		c.UI.Theme != "light" {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme))
	}

	// Every action needs at least one key bound to it.
	bindings := map[string]string{
		"up":     c.Keys.Up,
		"down":   c.Keys.Down,
		"diff":   c.Keys.Diff,
		"files":  c.Keys.Files,
		"apply":  c.Keys.Apply,
		"pop":    c.Keys.Pop,
		"drop":   c.Keys.Drop,
		"new":    c.Keys.New,
		"search": c.Keys.Search,
		"clear":  c.Keys.Clear,
		"quit":   c.Keys.Quit,
	}
	for name, value := range bindings {
		if value != "" && strings.TrimSpace(strings.ReplaceAll(value, ",", "")) == "" {
			warnings = append(warnings, fmt.Sprintf("keys.%s is blank; the default binding will be used", name))
		}
	}

	return warnings
}
