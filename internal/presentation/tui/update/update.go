// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/presentation/surface"
	"github.com/tesso57/highlights/internal/presentation/surface/adaptive"
	"github.com/tesso57/highlights/internal/presentation/surface/compact"
	"github.com/tesso57/highlights/internal/presentation/tui/intent"
	"github.com/tesso57/highlights/internal/presentation/tui/state"
)

// AckDuration is how long a copy or open acknowledgement stays visible.
const AckDuration = 1500 * time.Millisecond

const (
	openingText    = "Opening viewer..."
	openFailedText = "Failed to open viewer"
	noCopyText     = "Nothing to copy"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Highlights      *usecase.HighlightService
	FeedURL         string
	ViewerURL       string
	Clipboard       compact.Clipboard
	OpenBrowser     func(string) error
	RefreshInterval time.Duration
}

// FeedLoadedMsg is emitted when a render cycle finishes.
type FeedLoadedMsg struct {
	Outcome    usecase.Outcome
	Invocation compact.Invocation
}

// RefreshTickMsg triggers a scheduled background refresh.
type RefreshTickMsg struct{}

// StatusExpiredMsg reverts the acknowledgement with the given ID.
type StatusExpiredMsg struct {
	ID int
}

// LoadHighlightsCmd creates a command that runs one render cycle.
func LoadHighlightsCmd(svc *usecase.HighlightService, url string, seq uint64, inv compact.Invocation) tea.Cmd {
	return func() tea.Msg {
		out := svc.Load(context.Background(), url)
		out.Seq = seq
		return FeedLoadedMsg{Outcome: out, Invocation: inv}
	}
}

// ScheduleRefreshCmd fires a RefreshTickMsg after d.
func ScheduleRefreshCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return RefreshTickMsg{} })
}

// StartCycle issues a new cycle; results of earlier cycles become stale.
// Refresh cycles are not issued while a tap is pending so the tap's copy
// is never dropped.
func StartCycle(s *state.ModelState, deps Deps, inv compact.Invocation) tea.Cmd {
	if deps.Highlights == nil {
		return nil
	}
	if inv == compact.BackgroundRefresh && s.TapPending {
		return nil
	}
	seq := s.NextSeq()
	s.Loading = true
	s.TapPending = inv == compact.Interactive
	return tea.Batch(s.Spinner.Tick, LoadHighlightsCmd(deps.Highlights, deps.FeedURL, seq, inv))
}

// HandleRefreshTick starts a background cycle and schedules the next tick.
func HandleRefreshTick(s *state.ModelState, deps Deps) tea.Cmd {
	return tea.Batch(StartCycle(s, deps, compact.BackgroundRefresh), ScheduleRefreshCmd(deps.RefreshInterval))
}

// HandleFeedLoadedMsg applies a cycle result unless a newer cycle was issued.
func HandleFeedLoadedMsg(s *state.ModelState, msg FeedLoadedMsg, deps Deps) {
	if s.Stale(msg.Outcome.Seq) {
		return
	}
	s.Loading = false
	s.TapPending = false
	s.Outcome = msg.Outcome

	if s.Surface == state.AdaptiveSurface {
		RebuildTree(s, deps)
		return
	}

	res := compact.Render(msg.Outcome, msg.Invocation, now(deps), deps.Clipboard)
	if res.Dialog != nil {
		s.Dialog = res.Dialog
		s.Session = state.DialogView
		RebuildTree(s, deps)
		return
	}
	s.Tree = res.Tree
}

// RebuildTree re-renders the widget from the last applied outcome.
func RebuildTree(s *state.ModelState, deps Deps) {
	if s.Surface == state.AdaptiveSurface {
		s.Tree = adaptive.Render(s.Outcome, s.Size, deps.ViewerURL, now(deps))
		return
	}
	s.Tree = compact.Render(s.Outcome, compact.BackgroundRefresh, now(deps), deps.Clipboard).Tree
}

// HandleStatusExpiredMsg clears the acknowledgement if it is still current.
func HandleStatusExpiredMsg(s *state.ModelState, msg StatusExpiredMsg) {
	if msg.ID == s.StatusID {
		s.Status = ""
	}
}

// HandleWindowSize records the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
}

// HandleKeyMsg processes key presses; the bool reports whether it was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.Quit {
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}

	switch s.Session {
	case state.DialogView:
		return handleDialogViewIntent(s, parsed)
	case state.HelpView:
		return handleHelpViewIntent(s, parsed)
	case state.WidgetView:
		return handleWidgetViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleDialogViewIntent(s *state.ModelState, in intent.Intent) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Dismiss, intent.Tap:
		s.Dialog = nil
		s.Session = state.WidgetView
		return nil, true
	default:
		return nil, false
	}
}

func handleHelpViewIntent(s *state.ModelState, in intent.Intent) (tea.Cmd, bool) {
	switch in.Type {
	case intent.ToggleHelp, intent.Dismiss:
		s.Session = state.WidgetView
		return nil, true
	default:
		return nil, false
	}
}

func handleWidgetViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.ToggleHelp:
		s.Session = state.HelpView
		return nil, true
	case intent.Refresh:
		return StartCycle(s, deps, compact.BackgroundRefresh), true
	case intent.Tap:
		return handleTap(s, deps), true
	case intent.Copy:
		return handleCopy(s, deps), true
	default:
		return nil, false
	}
}

// handleTap runs the surface's tap behaviour: the compact widget starts an
// interactive cycle that copies; the adaptive widget opens its tap target.
func handleTap(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Surface == state.CompactSurface {
		return StartCycle(s, deps, compact.Interactive)
	}
	if s.Tree.Tap == nil || deps.OpenBrowser == nil {
		return nil
	}
	if err := deps.OpenBrowser(s.Tree.Tap.URL); err != nil {
		return SetStatus(s, openFailedText)
	}
	return SetStatus(s, openingText)
}

func handleCopy(s *state.ModelState, deps Deps) tea.Cmd {
	for _, a := range s.Tree.Actions {
		if a.Kind != surface.CopyHighlight {
			continue
		}
		return SetStatus(s, compact.Copy(a.Payload, deps.Clipboard).Title)
	}
	return SetStatus(s, noCopyText)
}

// SetStatus shows an acknowledgement and schedules its revert.
func SetStatus(s *state.ModelState, text string) tea.Cmd {
	s.StatusID++
	id := s.StatusID
	s.Status = text
	return tea.Tick(AckDuration, func(time.Time) tea.Msg { return StatusExpiredMsg{ID: id} })
}

func now(deps Deps) time.Time {
	if deps.Highlights == nil {
		return time.Now()
	}
	return deps.Highlights.CurrentTime()
}
