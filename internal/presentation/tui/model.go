package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/presentation/surface/compact"
	"github.com/tesso57/highlights/internal/presentation/tui/state"
	"github.com/tesso57/highlights/internal/presentation/tui/update"
	"github.com/tesso57/highlights/internal/presentation/tui/view"
)

// Options selects which widget the host shows.
type Options struct {
	Surface   state.Surface
	Size      derive.Size
	Clipboard compact.Clipboard
}

// Model represents the widget host state.
type Model struct {
	settings   settings.Settings
	highlights *usecase.HighlightService
	clipboard  compact.Clipboard
	state      *state.ModelState
}

// NewModel creates a new widget host model.
func NewModel(cfg settings.Settings, highlights *usecase.HighlightService, opts Options) *Model {
	return &Model{
		settings:   cfg,
		highlights: highlights,
		clipboard:  opts.Clipboard,
		state:      newModelState(cfg, opts),
	}
}

// Init starts the first cycle and the refresh timer.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		update.StartCycle(m.state, m.deps(), compact.BackgroundRefresh),
		update.ScheduleRefreshCmd(m.settings.RefreshInterval()),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.FeedLoadedMsg:
		update.HandleFeedLoadedMsg(m.state, msg, m.deps())
	case update.RefreshTickMsg:
		cmds = append(cmds, update.HandleRefreshTick(m.state, m.deps()))
	case update.StatusExpiredMsg:
		update.HandleStatusExpiredMsg(m.state, msg)
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the widget host.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Highlights:      m.highlights,
		FeedURL:         m.settings.FeedURL,
		ViewerURL:       m.settings.ViewerTarget(),
		Clipboard:       m.clipboard,
		OpenBrowser:     OpenBrowser,
		RefreshInterval: m.settings.RefreshInterval(),
	}
}

func newModelState(cfg settings.Settings, opts Options) *state.ModelState {
	return &state.ModelState{
		Session: state.WidgetView,
		Surface: opts.Surface,
		Size:    opts.Size,
		Help:    help.New(),
		Spinner: newSpinner(cfg.Theme),
		Keys:    state.NewKeyMap(cfg.KeyMap),
	}
}

func newSpinner(theme settings.ThemeConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	return s
}
