// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/highlights/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	WidgetView Session = iota
	DialogView
	HelpView
	QuitView
)

// Surface is the widget the host is showing.
type Surface int

const (
	CompactSurface Surface = iota
	AdaptiveSurface
)

// String implements fmt.Stringer.
func (s Surface) String() string {
	if s == AdaptiveSurface {
		return "adaptive"
	}
	return "compact"
}

// ParseSurface maps a CLI argument to a Surface.
func ParseSurface(name string) (Surface, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "compact":
		return CompactSurface, true
	case "adaptive":
		return AdaptiveSurface, true
	default:
		return CompactSurface, false
	}
}

// KeyMap defines the keybindings for the widget host.
type KeyMap struct {
	Tap     key.Binding
	Copy    key.Binding
	Refresh key.Binding
	Dismiss key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Copy, k.Refresh},
		{k.Dismiss, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Tap)...),
			key.WithHelp(cfg.Tap, "tap"),
		),
		Copy: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Copy)...),
			key.WithHelp(cfg.Copy, "copy highlight"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Refresh)...),
			key.WithHelp(cfg.Refresh, "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Dismiss)...),
			key.WithHelp(cfg.Dismiss, "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "enter":
			out = append(out, "ctrl+m")
		case "esc":
			out = append(out, "escape")
		}
	}
	return out
}
