package view

import (
	"strings"
	"testing"

	"github.com/tesso57/highlights/internal/presentation/surface"
	"github.com/tesso57/highlights/internal/presentation/tui/components/canvas"
	"github.com/tesso57/highlights/internal/presentation/tui/components/header"
	"github.com/tesso57/highlights/internal/presentation/tui/components/modal"
)

func TestRender(t *testing.T) {
	p := Props{
		Header: header.Props{Visible: true, Surface: "compact"},
		Canvas: canvas.Props{Tree: surface.Message("📖 No highlights yet", surface.Muted), Width: 30, Height: 8},
		Footer: "FOOTER",
	}

	got := Render(p)
	for _, want := range []string{"compact", "No highlights yet", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q:\n%s", want, got)
		}
	}
}

func TestRender_ModalReplacesWidget(t *testing.T) {
	p := Props{
		Canvas: canvas.Props{Tree: surface.Message("WIDGET", surface.Muted), Width: 30, Height: 8},
		Modal:  modal.Props{Visible: true, Kind: modal.Help, Body: "HELP"},
	}

	got := Render(p)
	if !strings.Contains(got, "HELP") {
		t.Errorf("Render() missing modal body:\n%s", got)
	}
	if strings.Contains(got, "WIDGET") {
		t.Errorf("Render() should not draw the widget under a modal:\n%s", got)
	}
}
