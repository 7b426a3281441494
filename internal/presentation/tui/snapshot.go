package tui

import (
	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/presentation/surface"
	"github.com/tesso57/highlights/internal/presentation/tui/components/canvas"
	"github.com/tesso57/highlights/internal/presentation/tui/components/modal"
	"github.com/tesso57/highlights/internal/presentation/tui/metrics"
	"github.com/tesso57/highlights/internal/presentation/tui/state"
)

// Snapshot draws one widget frame for non-interactive output.
func Snapshot(theme settings.ThemeConfig, surf state.Surface, size derive.Size, tree surface.Tree) string {
	width, height := metrics.WidgetSize(surf == state.CompactSurface, size)
	return canvas.Render(canvas.Props{
		Tree:        tree,
		Theme:       theme,
		Width:       width,
		Height:      height,
		Placeholder: loadingText,
	})
}

// DialogSnapshot draws a confirmation dialog for non-interactive output.
func DialogSnapshot(theme settings.ThemeConfig, d surface.Dialog) string {
	return modal.Render(modal.Props{
		Visible: true,
		Kind:    modal.Confirm,
		Title:   d.Title,
		Body:    d.Message,
		Failed:  d.Failed,
		Theme:   theme,
	})
}
