package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/presentation/surface"
)

var theme = settings.ThemeConfig{
	Background: "#1a1a1a",
	Primary:    "#ffffff",
	Secondary:  "#a0a0a0",
	Muted:      "#666666",
	Accent:     "#4f9cf9",
	Warning:    "#ff9500",
}

func populatedTree() surface.Tree {
	return surface.Tree{
		Header: []surface.Block{
			{Content: "📖", Size: surface.Icon},
			{Content: "Dune", Size: surface.Title, Role: surface.Secondary, LineLimit: 1},
		},
		Body: []surface.Block{
			{Content: "Fear is the mind-killer. Fear is the little-death that brings total obliteration.", LineLimit: 2},
		},
		Footer: []surface.Block{
			{Content: "5m ago", Size: surface.Caption, Role: surface.Muted},
			{Content: "Tap to copy", Size: surface.Caption, Role: surface.Accent},
		},
	}
}

func TestRender_Populated(t *testing.T) {
	got := ansi.Strip(Render(Props{Tree: populatedTree(), Theme: theme, Width: 30, Height: 12}))

	for _, want := range []string{"📖", "Dune", "Fear is", "5m ago", "Tap to copy"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
	for _, line := range strings.Split(got, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Errorf("line wider than frame (%d): %q", w, line)
		}
	}
	if strings.Contains(got, "obliteration") {
		t.Errorf("Render() should clamp the body to its line limit:\n%s", got)
	}
}

func TestRender_Message(t *testing.T) {
	got := ansi.Strip(Render(Props{
		Tree:  surface.Message("📖 No highlights yet", surface.Muted),
		Theme: theme, Width: 30, Height: 10,
	}))
	if !strings.Contains(got, "No highlights yet") {
		t.Errorf("Render() missing message:\n%s", got)
	}
}

func TestRender_Placeholder(t *testing.T) {
	got := ansi.Strip(Render(Props{Theme: theme, Width: 30, Height: 10, Placeholder: "Loading highlights..."}))
	if !strings.Contains(got, "Loading highlights...") {
		t.Errorf("Render() missing placeholder:\n%s", got)
	}
}

func TestRenderFooter_EmptyTimeKeepsHint(t *testing.T) {
	got := ansi.Strip(renderFooter([]surface.Block{
		{Content: "", Size: surface.Caption, Role: surface.Muted},
		{Content: "Tap to view all →", Size: surface.Caption, Role: surface.Accent},
	}, theme, 10))
	if got != "Tap to view all →" {
		t.Errorf("renderFooter() = %q", got)
	}
}
