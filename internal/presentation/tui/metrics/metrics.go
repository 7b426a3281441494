// Package metrics centralizes layout constants for the TUI.
package metrics

import "github.com/tesso57/highlights/internal/application/derive"

const (
	HeaderLines = 1
	FooterLines = 1

	// WidgetPaddingX is the horizontal padding inside the widget frame.
	WidgetPaddingX = 2
	// WidgetPaddingY is the vertical padding inside the widget frame.
	WidgetPaddingY = 1
	WidgetBorder   = 1

	compactWidth = 24
	smallWidth   = 24
	mediumWidth  = 50
	largeWidth   = 50

	compactHeight = 10
	smallHeight   = 10
	mediumHeight  = 10
	largeHeight   = 22
)

// WidgetSize returns the outer width and height of a widget frame. Compact
// widgets use the small footprint.
func WidgetSize(compact bool, size derive.Size) (int, int) {
	if compact {
		return compactWidth, compactHeight
	}
	switch size {
	case derive.Small:
		return smallWidth, smallHeight
	case derive.Large:
		return largeWidth, largeHeight
	default:
		return mediumWidth, mediumHeight
	}
}

// ContentWidth returns the width available to text inside a frame.
func ContentWidth(frameWidth int) int {
	return max(frameWidth-2*WidgetPaddingX-2*WidgetBorder, 1)
}
