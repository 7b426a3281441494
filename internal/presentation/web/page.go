// Package web renders the full highlights page and serves it over HTTP.
package web

import (
	"time"

	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/presentation/surface"
)

// MessageKind selects the styling of a page-level message.
type MessageKind string

const (
	MessageLoading MessageKind = "loading"
	MessageWarning MessageKind = "warning"
	MessageError   MessageKind = "error"
	MessageEmpty   MessageKind = "empty"
)

// Message is the single block a page shows instead of cards.
type Message struct {
	Kind   MessageKind
	Icon   string
	Text   string
	Detail string
}

// Card is one highlight on the page.
type Card struct {
	Title     string
	Text      string
	TimeLabel string
	Actions   []surface.Action
}

// Page is the rendered web surface.
type Page struct {
	State        usecase.State
	Message      *Message
	Cards        []Card
	UpdatedLabel string
}

const (
	loadingText      = "Loading highlights..."
	unconfiguredText = "Please configure the feed URL (feed_url / HIGHLIGHTS_FEED_URL)"
	errorText        = "Failed to load highlights."
	emptyText        = "No highlights yet"
)

// LoadingPage is the page shown before a cycle completes.
func LoadingPage() Page {
	return Page{State: usecase.Loading, Message: &Message{Kind: MessageLoading, Text: loadingText}}
}

// BuildPage renders every record of a populated outcome as a card; other
// states become a single message with no actions.
func BuildPage(out usecase.Outcome, now time.Time) Page {
	page := Page{State: out.State}
	switch out.State {
	case usecase.Loading:
		return LoadingPage()
	case usecase.Unconfigured:
		page.Message = &Message{Kind: MessageWarning, Icon: "⚠️", Text: unconfiguredText}
		return page
	case usecase.Error:
		page.Message = &Message{Kind: MessageError, Icon: "⚠️", Text: errorText, Detail: reasonDetail(out.Reason)}
		return page
	case usecase.Empty:
		page.Message = &Message{Kind: MessageEmpty, Icon: "📖", Text: emptyText}
		return page
	}

	page.UpdatedLabel = "Updated " + derive.RelativeTime(out.Document.UpdatedAt, now, derive.UnknownFull)
	page.Cards = make([]Card, 0, out.Document.Len())
	for _, item := range out.Document.Items {
		page.Cards = append(page.Cards, Card{
			Title:     item.BookTitle,
			Text:      item.HighlightText,
			TimeLabel: derive.RelativeTime(item.DisplayTime(), now, derive.UnknownFull),
			Actions: []surface.Action{
				{Kind: surface.CopyTitle, Label: "Copy", Payload: item.BookTitle},
				{Kind: surface.CopyHighlight, Label: "COPY HIGHLIGHT", Payload: item.HighlightText},
			},
		})
	}
	return page
}

func reasonDetail(reason usecase.Reason) string {
	switch reason {
	case usecase.ReasonStatus:
		return "The feed host returned an unsuccessful response."
	case usecase.ReasonDecode:
		return "The feed could not be read."
	default:
		return "The feed host could not be reached."
	}
}
