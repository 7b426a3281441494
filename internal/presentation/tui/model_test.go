package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/domain/highlight"
	"github.com/tesso57/highlights/internal/presentation/surface"
	"github.com/tesso57/highlights/internal/presentation/surface/compact"
	"github.com/tesso57/highlights/internal/presentation/tui/state"
	"github.com/tesso57/highlights/internal/presentation/tui/update"
)

// deliver runs the model's pending fetch synchronously, the way the
// bubbletea runtime would.
func deliver(t *testing.T, m *Model, inv compact.Invocation) *Model {
	t.Helper()
	msg := update.LoadHighlightsCmd(m.highlights, m.settings.FeedURL, m.state.Seq, inv)()
	tm, _ := m.Update(msg)
	return tm.(*Model)
}

func TestModel_InitStartsCycle(t *testing.T) {
	m := NewModel(testSettings(), newTestService(&stubFeedFetcher{doc: duneDocument()}), Options{})

	cmd := m.Init()

	assert.NotNil(t, cmd)
	assert.True(t, m.state.Loading)
	assert.Equal(t, uint64(1), m.state.Seq)
	assert.Contains(t, ansi.Strip(m.View()), "Loading highlights...")
}

func TestModel_CompactPopulated(t *testing.T) {
	m := NewModel(testSettings(), newTestService(&stubFeedFetcher{doc: duneDocument()}), Options{Surface: state.CompactSurface})
	_ = m.Init()
	m = deliver(t, m, compact.BackgroundRefresh)

	out := ansi.Strip(m.View())
	assert.False(t, m.state.Loading)
	for _, want := range []string{"compact", "Dune", "mind-killer.", "5m ago", "Tap to copy"} {
		assert.Contains(t, out, want)
	}
}

func TestModel_CompactTapShowsCopiedDialog(t *testing.T) {
	clip := &stubClipboard{}
	m := NewModel(testSettings(), newTestService(&stubFeedFetcher{doc: duneDocument()}), Options{
		Surface:   state.CompactSurface,
		Clipboard: clip,
	})
	_ = m.Init()
	m = deliver(t, m, compact.BackgroundRefresh)

	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tm.(*Model)
	require.NotNil(t, cmd)
	assert.Equal(t, uint64(2), m.state.Seq)

	m = deliver(t, m, compact.Interactive)
	out := ansi.Strip(m.View())

	assert.Equal(t, state.DialogView, m.state.Session)
	assert.Equal(t, "Fear is the mind-killer.", clip.text)
	assert.Contains(t, out, "✓ Copied!")
	assert.Contains(t, out, "Fear is the mind-killer.")

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tm.(*Model)
	assert.Equal(t, state.WidgetView, m.state.Session)
	assert.Contains(t, ansi.Strip(m.View()), "Tap to copy")
}

func TestModel_AdaptiveStates(t *testing.T) {
	tests := []struct {
		name    string
		fetcher *stubFeedFetcher
		want    string
	}{
		{"unconfigured", &stubFeedFetcher{err: usecase.ErrUnconfigured}, "Configure GIST_RAW_URL"},
		{"error", &stubFeedFetcher{err: &usecase.FetchError{Reason: usecase.ReasonNetwork}}, "No highlights"},
		{"empty", &stubFeedFetcher{doc: &highlight.Document{}}, "No highlights yet"},
		{"populated", &stubFeedFetcher{doc: duneDocument()}, "Tap to view all →"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(testSettings(), newTestService(tt.fetcher), Options{
				Surface: state.AdaptiveSurface,
				Size:    derive.Medium,
			})
			_ = m.Init()
			m = deliver(t, m, compact.BackgroundRefresh)

			out := ansi.Strip(m.View())
			assert.Contains(t, out, "adaptive · medium")
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestModel_RefreshTickStartsNewCycle(t *testing.T) {
	m := NewModel(testSettings(), newTestService(&stubFeedFetcher{doc: duneDocument()}), Options{})
	_ = m.Init()
	m = deliver(t, m, compact.BackgroundRefresh)

	tm, cmd := m.Update(update.RefreshTickMsg{})
	m = tm.(*Model)

	assert.NotNil(t, cmd)
	assert.True(t, m.state.Loading)
	assert.Equal(t, uint64(2), m.state.Seq)
	// The previous widget stays on screen while refreshing.
	assert.Contains(t, ansi.Strip(m.View()), "mind-killer.")
	assert.Contains(t, ansi.Strip(m.View()), "Refreshing...")
}

func TestModel_StaleResultIgnored(t *testing.T) {
	fetcher := &stubFeedFetcher{doc: duneDocument()}
	m := NewModel(testSettings(), newTestService(fetcher), Options{})
	_ = m.Init()
	staleMsg := update.LoadHighlightsCmd(m.highlights, m.settings.FeedURL, m.state.Seq, compact.BackgroundRefresh)()

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	fetcher.doc = &highlight.Document{}
	m = deliver(t, m, compact.BackgroundRefresh)

	tm, _ := m.Update(staleMsg)
	m = tm.(*Model)

	assert.Equal(t, usecase.Empty, m.state.Outcome.State)
	assert.Contains(t, ansi.Strip(m.View()), "No highlights")
}

func TestModel_QuitDialog(t *testing.T) {
	m := NewModel(testSettings(), newTestService(&stubFeedFetcher{doc: duneDocument()}), Options{})

	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	assert.Equal(t, state.QuitView, m.state.Session)
	assert.Nil(t, cmd, "Should not return tea.Quit command yet")
	assert.Contains(t, m.View(), "Are you sure you want to quit?")

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tm.(*Model)
	assert.Equal(t, state.WidgetView, m.state.Session)

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.NotNil(t, cmd)
}

func TestModel_HelpModal(t *testing.T) {
	m := NewModel(testSettings(), newTestService(&stubFeedFetcher{doc: duneDocument()}), Options{})

	tm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = tm.(*Model)

	out := m.View()
	assert.Equal(t, state.HelpView, m.state.Session)
	assert.Contains(t, out, "copy highlight")
	assert.Contains(t, out, "refresh")
}

func TestModel_WindowSize(t *testing.T) {
	m := NewModel(testSettings(), newTestService(&stubFeedFetcher{}), Options{})
	tm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tm.(*Model)
	assert.Equal(t, 120, m.state.Width)
	assert.Equal(t, 40, m.state.Height)
}

func TestSnapshot(t *testing.T) {
	theme := testSettings().Theme
	tree := surface.Message("📖 No highlights yet", surface.Muted)

	out := ansi.Strip(Snapshot(theme, state.AdaptiveSurface, derive.Large, tree))
	assert.Contains(t, out, "No highlights yet")

	dialog := ansi.Strip(DialogSnapshot(theme, surface.Dialog{Title: "✓ Copied!", Message: "Fear"}))
	assert.Contains(t, dialog, "✓ Copied!")
	assert.Contains(t, dialog, "Fear")
	assert.False(t, strings.Contains(dialog, "esc to dismiss"))
}
