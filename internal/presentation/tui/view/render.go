// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/highlights/internal/presentation/tui/components/canvas"
	"github.com/tesso57/highlights/internal/presentation/tui/components/header"
	"github.com/tesso57/highlights/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
type Props struct {
	Header header.Props
	Canvas canvas.Props
	Modal  modal.Props
	Footer string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	parts := make([]string, 0, 3)
	if h := header.Render(p.Header); h != "" {
		parts = append(parts, h)
	}
	parts = append(parts, canvas.Render(p.Canvas))
	if p.Footer != "" {
		parts = append(parts, p.Footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
