// Package header provides the widget host header component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Surface string
	Size    string
	Color   string
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	label := p.Surface
	if p.Size != "" {
		label = fmt.Sprintf("%s · %s", p.Surface, p.Size)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Color)).
		Render(fmt.Sprintf("📚 Highlights  %s", label))
}
