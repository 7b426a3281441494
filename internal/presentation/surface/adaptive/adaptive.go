// Package adaptive renders the size-adaptive widget.
package adaptive

import (
	"time"

	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/presentation/surface"
)

const (
	unconfiguredText = "⚠️ Configure GIST_RAW_URL"
	errorText        = "📚 No highlights"
	emptyText        = "📖 No highlights yet"
	hintText         = "Tap to view all →"
	bookIcon         = "📖"
)

// Render resolves the adaptive widget for an outcome at the declared size.
// viewerURL is the tap destination; pass "" when none is configured.
func Render(out usecase.Outcome, size derive.Size, viewerURL string, now time.Time) surface.Tree {
	switch out.State {
	case usecase.Unconfigured:
		return surface.Message(unconfiguredText, surface.Warning)
	case usecase.Error:
		return surface.Message(errorText, surface.Muted)
	case usecase.Empty:
		return surface.Message(emptyText, surface.Muted)
	case usecase.Loading:
		return surface.Tree{}
	}

	item, ok := derive.MostRecent(out.Document)
	if !ok {
		return surface.Message(emptyText, surface.Muted)
	}

	budget := derive.BudgetFor(size)
	tree := surface.Tree{
		Header: []surface.Block{
			{Content: bookIcon, Size: surface.Icon, Role: surface.Primary},
			{Content: derive.Truncate(item.BookTitle, budget.TitleMax), Size: surface.Title, Role: surface.Secondary, LineLimit: 1},
		},
		Body: []surface.Block{
			{Content: derive.Truncate(item.HighlightText, budget.TextMax), Size: surface.Body, Role: surface.Primary, LineLimit: budget.Lines},
		},
		Footer: []surface.Block{
			{Content: derive.RelativeTime(item.DisplayTime(), now, derive.UnknownWidget), Size: surface.Caption, Role: surface.Muted},
			{Content: hintText, Size: surface.Caption, Role: surface.Accent},
		},
	}
	if viewerURL != "" {
		tree.Tap = &surface.Tap{URL: viewerURL}
	}
	return tree
}
