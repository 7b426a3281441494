package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tesso57/highlights/internal/domain/highlight"
)

// State is the render state a surface is in for one cycle.
type State int

const (
	Loading State = iota
	Unconfigured
	Error
	Empty
	Populated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Unconfigured:
		return "unconfigured"
	case Error:
		return "error"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// Outcome is the resolved result of one render cycle.
type Outcome struct {
	State    State
	Document *highlight.Document
	// Reason is set for Error outcomes.
	Reason Reason
	Err    error
	// Seq orders cycles of one surface instance; hosts drop older results.
	Seq uint64
}

// Resolve maps a fetch result to exactly one terminal state.
// A document with absent or empty items is Empty.
func Resolve(doc *highlight.Document, err error) Outcome {
	if err != nil {
		if errors.Is(err, ErrUnconfigured) {
			return Outcome{State: Unconfigured, Err: err}
		}
		reason := ReasonNetwork
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			reason = fetchErr.Reason
		}
		return Outcome{State: Error, Reason: reason, Err: err}
	}
	if doc.Len() == 0 {
		return Outcome{State: Empty, Document: doc}
	}
	return Outcome{State: Populated, Document: doc}
}

// HighlightFetcher abstracts the feed client.
type HighlightFetcher interface {
	Fetch(ctx context.Context, url string) (*highlight.Document, error)
}

// HighlightService runs the fetch and resolve steps of a render cycle.
type HighlightService struct {
	Fetcher HighlightFetcher
	Logger  *log.Logger
	Now     func() time.Time
}

// NewHighlightService constructs a HighlightService.
func NewHighlightService(fetcher HighlightFetcher, logger *log.Logger, now func() time.Time) HighlightService {
	return HighlightService{
		Fetcher: fetcher,
		Logger:  logger,
		Now:     now,
	}
}

// Load fetches the feed once and resolves the outcome. It never returns an
// error; failures become Error or Unconfigured outcomes.
func (s HighlightService) Load(ctx context.Context, url string) Outcome {
	if s.Fetcher == nil {
		return Resolve(nil, &FetchError{Reason: ReasonNetwork, Err: errors.New("no feed fetcher")})
	}
	doc, err := s.Fetcher.Fetch(ctx, url)
	out := Resolve(doc, err)
	s.logOutcome(out)
	return out
}

// CurrentTime returns the service clock.
func (s HighlightService) CurrentTime() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s HighlightService) logOutcome(out Outcome) {
	if s.Logger == nil {
		return
	}
	switch out.State {
	case Unconfigured:
		s.Logger.Warn("feed url is not configured")
	case Error:
		s.Logger.Warn("feed fetch failed", "reason", out.Reason, "err", out.Err)
	default:
		s.Logger.Debug("feed resolved", "state", out.State, "items", out.Document.Len())
	}
}
