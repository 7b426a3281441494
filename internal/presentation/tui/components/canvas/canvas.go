// Package canvas draws a surface tree as a framed terminal widget.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/presentation/surface"
	"github.com/tesso57/highlights/internal/presentation/tui/metrics"
	"github.com/tesso57/highlights/internal/presentation/tui/textutil"
)

// Props defines the properties for the canvas component.
type Props struct {
	Tree  surface.Tree
	Theme settings.ThemeConfig
	// Width and Height are the outer frame size.
	Width  int
	Height int
	// Placeholder is drawn when the tree has no blocks.
	Placeholder string
	// Focused draws the frame in the accent color.
	Focused bool
}

// Render renders the canvas component.
func Render(p Props) string {
	inner := metrics.ContentWidth(p.Width)

	var rows []string
	if header := renderHeader(p.Tree.Header, p.Theme, inner); header != "" {
		rows = append(rows, header)
	}
	for _, b := range p.Tree.Body {
		rows = append(rows, blockStyle(b, p.Theme).Render(textutil.Clamp(b.Content, inner, b.LineLimit)))
	}

	message := len(p.Tree.Header) == 0 && len(p.Tree.Footer) == 0
	if len(rows) == 0 && p.Placeholder != "" {
		rows = append(rows, roleStyle(surface.Muted, p.Theme).Render(p.Placeholder))
		message = true
	}

	contentHeight := max(p.Height-2*metrics.WidgetBorder-2*metrics.WidgetPaddingY, 1)
	var content string
	if message {
		content = lipgloss.Place(inner, contentHeight, lipgloss.Center, lipgloss.Center, strings.Join(rows, "\n"))
	} else {
		footer := renderFooter(p.Tree.Footer, p.Theme, inner)
		body := strings.Join(rows, "\n\n")
		gap := contentHeight - lipgloss.Height(body) - lipgloss.Height(footer)
		if footer != "" && gap > 0 {
			body += strings.Repeat("\n", gap)
		}
		content = lipgloss.JoinVertical(lipgloss.Left, body, footer)
	}

	border := p.Theme.Muted
	if p.Focused {
		border = p.Theme.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(metrics.WidgetPaddingY, metrics.WidgetPaddingX).
		Width(inner + 2*metrics.WidgetPaddingX).
		Render(content)
}

func renderHeader(blocks []surface.Block, theme settings.ThemeConfig, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(blocks))
	used := 0
	for i, b := range blocks {
		text := textutil.SingleLine(b.Content)
		if i == len(blocks)-1 {
			text = textutil.Truncate(text, width-used)
		}
		used += ansi.StringWidth(text) + 1
		parts = append(parts, blockStyle(b, theme).Render(text))
	}
	return strings.Join(parts, " ")
}

// renderFooter places the first block on the left and the rest on the right,
// stacking them when the row is too narrow.
func renderFooter(blocks []surface.Block, theme settings.ThemeConfig, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	left := blockStyle(blocks[0], theme).Render(blocks[0].Content)
	if len(blocks) == 1 {
		return left
	}
	rights := make([]string, 0, len(blocks)-1)
	for _, b := range blocks[1:] {
		rights = append(rights, blockStyle(b, theme).Render(b.Content))
	}
	right := strings.Join(rights, " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		if blocks[0].Content == "" {
			return right
		}
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func blockStyle(b surface.Block, theme settings.ThemeConfig) lipgloss.Style {
	style := roleStyle(b.Role, theme)
	switch b.Size {
	case surface.Title:
		style = style.Bold(true)
	case surface.Caption:
		style = style.Faint(b.Role == surface.Muted)
	}
	return style
}

func roleStyle(role surface.ColorRole, theme settings.ThemeConfig) lipgloss.Style {
	var color string
	switch role {
	case surface.Secondary:
		color = theme.Secondary
	case surface.Muted:
		color = theme.Muted
	case surface.Accent:
		color = theme.Accent
	case surface.Warning:
		color = theme.Warning
	default:
		color = theme.Primary
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
