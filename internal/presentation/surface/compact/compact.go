// Package compact renders the single-item compact widget.
package compact

import (
	"time"

	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/presentation/surface"
)

const (
	unconfiguredText = "⚠️ Configure GIST_RAW_URL"
	errorText        = "📚 No highlight"
	emptyText        = "📖 No highlights yet"
	hintText         = "Tap to copy"
	bookIcon         = "📖"

	copiedTitle   = "✓ Copied!"
	failedTitle   = "Failed to copy"
	failedMessage = "The clipboard is not available."
)

// Invocation tells the renderer why it is running.
type Invocation int

const (
	// BackgroundRefresh is a widget refresh: build the visual tree.
	BackgroundRefresh Invocation = iota
	// Interactive is a user tap: copy the highlight and confirm.
	Interactive
)

// Clipboard is the capability used to copy text.
type Clipboard interface {
	WriteAll(text string) error
}

// Result is what one compact cycle produced. Exactly one of Tree or Dialog
// is meaningful: Dialog is set when the cycle copied instead of rendering.
type Result struct {
	Tree   surface.Tree
	Dialog *surface.Dialog
}

// Render resolves the compact widget for an outcome.
func Render(out usecase.Outcome, inv Invocation, now time.Time, clip Clipboard) Result {
	switch out.State {
	case usecase.Unconfigured:
		return Result{Tree: surface.Message(unconfiguredText, surface.Warning)}
	case usecase.Error:
		return Result{Tree: surface.Message(errorText, surface.Muted)}
	case usecase.Empty:
		return Result{Tree: surface.Message(emptyText, surface.Muted)}
	case usecase.Loading:
		return Result{}
	}

	item, ok := derive.MostRecent(out.Document)
	if !ok {
		return Result{Tree: surface.Message(emptyText, surface.Muted)}
	}
	if inv == Interactive {
		return Result{Dialog: Copy(item.HighlightText, clip)}
	}

	budget := derive.CompactBudget
	return Result{Tree: surface.Tree{
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
		Actions: []surface.Action{
			{Kind: surface.CopyHighlight, Label: hintText, Payload: item.HighlightText},
		},
	}}
}

// Copy writes the full text to the clipboard and returns the confirmation
// to present.
func Copy(text string, clip Clipboard) *surface.Dialog {
	if clip == nil || clip.WriteAll(text) != nil {
		return &surface.Dialog{Title: failedTitle, Message: failedMessage, Failed: true}
	}
	return &surface.Dialog{Title: copiedTitle, Message: derive.Truncate(text, derive.DialogMessageMax)}
}
