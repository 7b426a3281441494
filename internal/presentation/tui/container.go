// Package tui hosts the compact and adaptive widgets in a terminal.
package tui

import (
	"github.com/tesso57/highlights/internal/presentation/tui/components/canvas"
	"github.com/tesso57/highlights/internal/presentation/tui/components/header"
	"github.com/tesso57/highlights/internal/presentation/tui/components/modal"
	"github.com/tesso57/highlights/internal/presentation/tui/metrics"
	"github.com/tesso57/highlights/internal/presentation/tui/state"
	"github.com/tesso57/highlights/internal/presentation/tui/view"
)

const loadingText = "Loading highlights..."

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Canvas: m.buildCanvasProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	props := header.Props{
		Visible: true,
		Surface: m.state.Surface.String(),
		Color:   m.settings.Theme.Muted,
	}
	if m.state.Surface == state.AdaptiveSurface {
		props.Size = m.state.Size.String()
	}
	return props
}

func (m *Model) buildCanvasProps() canvas.Props {
	width, height := metrics.WidgetSize(m.state.Surface == state.CompactSurface, m.state.Size)
	props := canvas.Props{
		Tree:    m.state.Tree,
		Theme:   m.settings.Theme,
		Width:   width,
		Height:  height,
		Focused: m.state.Tree.Interactive(),
	}
	if m.state.Loading && !hasContent(m.state) {
		props.Placeholder = m.state.Spinner.View() + " " + loadingText
	}
	return props
}

func (m *Model) buildModalProps() modal.Props {
	base := modal.Props{
		Visible: true,
		Theme:   m.settings.Theme,
		Width:   m.state.Width,
		Height:  m.state.Height,
	}
	switch m.state.Session {
	case state.QuitView:
		base.Kind = modal.Quit
		base.Body = "Are you sure you want to quit?\n\n(y/n)"
		return base
	case state.DialogView:
		if m.state.Dialog == nil {
			return modal.Props{Visible: false}
		}
		base.Kind = modal.Confirm
		base.Title = m.state.Dialog.Title
		base.Body = m.state.Dialog.Message
		base.Failed = m.state.Dialog.Failed
		base.Dismissable = true
		return base
	case state.HelpView:
		base.Kind = modal.Help
		base.Body = m.state.Help.FullHelpView(m.state.Keys.FullHelp())
		return base
	default:
		return modal.Props{Visible: false}
	}
}

func (m *Model) buildFooterProps() string {
	helpText := state.FooterHelpText(m.state.Help, m.state.Keys)
	loading := m.state.Loading && hasContent(m.state)
	return state.FooterText(loading, m.state.Spinner.View(), m.state.Status, helpText)
}

func hasContent(st *state.ModelState) bool {
	t := st.Tree
	return len(t.Header) > 0 || len(t.Body) > 0 || len(t.Footer) > 0
}
