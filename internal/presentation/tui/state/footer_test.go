package state

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/tesso57/highlights/internal/application/settings"
)

func TestFooterText(t *testing.T) {
	tests := []struct {
		name     string
		loading  bool
		spinner  string
		status   string
		helpText string
		want     string
	}{
		{
			name:     "help when idle",
			helpText: "help",
			want:     "help",
		},
		{
			name:     "spinner while loading",
			loading:  true,
			spinner:  "*",
			helpText: "help",
			want:     "* Refreshing...",
		},
		{
			name:     "status wins over loading",
			loading:  true,
			spinner:  "*",
			status:   "✓ Copied!",
			helpText: "help",
			want:     "✓ Copied!",
		},
		{
			name:     "blank status ignored",
			status:   "   ",
			helpText: "help",
			want:     "help",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.loading, tt.spinner, tt.status, tt.helpText)
			if got != tt.want {
				t.Fatalf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFooterHelpText_SingleLine(t *testing.T) {
	keys := NewKeyMap(settings.KeyMapConfig{
		Tap:     "enter",
		Copy:    "c",
		Refresh: "r",
		Dismiss: "esc",
		Quit:    "q,ctrl+c",
	})

	got := FooterHelpText(help.New(), keys)
	if strings.Contains(got, "\n") {
		t.Fatalf("FooterHelpText() should be one line, got %q", got)
	}
	if !strings.Contains(got, "tap") || !strings.Contains(got, "quit") {
		t.Fatalf("FooterHelpText() = %q, want tap and quit bindings", got)
	}
}
