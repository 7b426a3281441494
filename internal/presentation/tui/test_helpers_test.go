package tui

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/domain/highlight"
)

var testNow = time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)

type stubFeedFetcher struct {
	mock.Mock
	doc *highlight.Document
	err error
}

func (s *stubFeedFetcher) Fetch(ctx context.Context, url string) (*highlight.Document, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(ctx, url)
		doc, _ := args.Get(0).(*highlight.Document)
		return doc, args.Error(1)
	}
	return s.doc, s.err
}

type stubClipboard struct {
	mock.Mock
	text string
}

func (s *stubClipboard) WriteAll(text string) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(text)
		return args.Error(0)
	}
	s.text = text
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		FeedURL:   "https://example.com/highlights.json",
		ViewerURL: "https://me.github.io/highlights",
		Widget:    settings.WidgetConfig{Size: "medium", RefreshMinutes: 15},
		KeyMap: settings.KeyMapConfig{
			Tap:     "enter",
			Copy:    "c",
			Refresh: "r",
			Dismiss: "esc",
			Quit:    "q",
		},
		Theme: settings.ThemeConfig{
			Background: "#1a1a1a",
			Primary:    "#ffffff",
			Secondary:  "#a0a0a0",
			Muted:      "#666666",
			Accent:     "#4f9cf9",
			Warning:    "#ff9500",
		},
	}
}

func duneDocument() *highlight.Document {
	return &highlight.Document{
		UpdatedAt: "2024-01-01T00:00:00Z",
		Items: []highlight.Record{
			{BookTitle: "Dune", HighlightText: "Fear is the mind-killer.", HighlightTime: "2024-01-01T00:00:00Z"},
		},
	}
}

func newTestService(f usecase.HighlightFetcher) *usecase.HighlightService {
	svc := usecase.NewHighlightService(f, nil, func() time.Time { return testNow })
	return &svc
}
