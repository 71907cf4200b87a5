package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/stashtui/stashtui/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions on the selected stash
	Diff  key.Binding
	Files key.Binding
	Apply key.Binding
	Pop   key.Binding
	Drop  key.Binding

	// List-level actions
	New    key.Binding
	Search key.Binding
	Clear  key.Binding
	Quit   key.Binding

	// Content view
	Back     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Diff: key.NewBinding(
			key.WithKeys("enter", "d"),
			key.WithHelp("enter/d", "diff"),
		),
		Files: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "files"),
		),
		Apply: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "apply"),
		),
		Pop: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pop"),
		),
		Drop: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "drop"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new stash"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear search"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "back"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Up != "" {
		km.Up = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Up)...),
			key.WithHelp(cfg.Up, "up"),
		)
	}
	if cfg.Down != "" {
		km.Down = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Down)...),
			key.WithHelp(cfg.Down, "down"),
		)
	}
	if cfg.Diff != "" {
		km.Diff = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Diff)...),
			key.WithHelp(cfg.Diff, "diff"),
		)
	}
	if cfg.Files != "" {
		km.Files = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Files)...),
			key.WithHelp(cfg.Files, "files"),
		)
	}
	if cfg.Apply != "" {
		km.Apply = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Apply)...),
			key.WithHelp(cfg.Apply, "apply"),
		)
	}
	if cfg.Pop != "" {
		km.Pop = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Pop)...),
			key.WithHelp(cfg.Pop, "pop"),
		)
	}
	if cfg.Drop != "" {
		km.Drop = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Drop)...),
			key.WithHelp(cfg.Drop, "drop"),
		)
	}
	if cfg.New != "" {
		km.New = key.NewBinding(
			key.WithKeys(parseKeys(cfg.New)...),
			key.WithHelp(cfg.New, "new stash"),
		)
	}
	if cfg.Search != "" {
		km.Search = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Search)...),
			key.WithHelp(cfg.Search, "search"),
		)
	}
	if cfg.Clear != "" {
		km.Clear = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Clear)...),
			key.WithHelp(cfg.Clear, "clear search"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
