// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/highlights/internal/application/settings"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Confirm shows a copy confirmation.
	Confirm
	// Help shows the help dialog.
	Help
	// Quit asks for quit confirmation.
	Quit
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	// Failed draws a confirmation in the warning color.
	Failed bool
	// Dismissable adds the dismiss hint to a confirmation.
	Dismissable bool
	Theme       settings.ThemeConfig
	Width       int
	Height      int
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	borderColor := lipgloss.Color(p.Theme.Accent)
	var content string

	if p.Kind == Confirm {
		titleColor := lipgloss.Color(p.Theme.Primary)
		if p.Failed {
			borderColor = lipgloss.Color(p.Theme.Warning)
			titleColor = borderColor
		}
		text := lipgloss.NewStyle().Bold(true).Foreground(titleColor).Render(p.Title)
		if p.Body != "" {
			text += "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme.Secondary)).Render(p.Body)
		}
		if p.Dismissable {
			text += "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(p.Theme.Muted)).Render("(esc to dismiss)")
		}
		content = lipgloss.NewStyle().
			Width(40).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2).
			Render(text)
	} else {
		if p.Kind == Quit {
			borderColor = lipgloss.Color(p.Theme.Warning)
		}
		content = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2).
			Render(p.Body)
	}

	if p.Width <= 0 || p.Height <= 0 {
		return content
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}
