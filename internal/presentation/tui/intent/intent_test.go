package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/presentation/tui/state"
)

func TestFromKeyMsg(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Tap:     "enter",
		Copy:    "c",
		Refresh: "r",
		Dismiss: "esc",
		Quit:    "q,ctrl+c",
	})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Type
	}{
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Quit},
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, ToggleHelp},
		{"tap", tea.KeyMsg{Type: tea.KeyEnter}, Tap},
		{"copy", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, Copy},
		{"refresh", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, Refresh},
		{"dismiss", tea.KeyMsg{Type: tea.KeyEsc}, Dismiss},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys); got.Type != tt.want {
				t.Fatalf("FromKeyMsg(%q) = %v, want %v", tt.msg.String(), got.Type, tt.want)
			}
		})
	}
}
