// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, "...")
}

// Clamp wraps text to width and keeps at most lines lines; the last kept
// line gets an ellipsis when content was dropped. lines <= 0 keeps all.
func Clamp(text string, width, lines int) string {
	if width <= 0 {
		return ""
	}
	wrapped := strings.Split(ansi.Wrap(text, width, ""), "\n")
	if lines <= 0 || len(wrapped) <= lines {
		return strings.Join(wrapped, "\n")
	}
	kept := wrapped[:lines]
	last := strings.TrimRight(kept[lines-1], " ")
	if ansi.StringWidth(last)+3 > width {
		last = ansi.Truncate(last, width-3, "")
	}
	kept[lines-1] = last + "..."
	return strings.Join(kept, "\n")
}
