// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/presentation/surface"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session  Session
	Previous Session
	Surface  Surface
	Size     derive.Size
	Help     help.Model
	Spinner  spinner.Model
	Keys     KeyMap
	Width    int
	Height   int

	// Loading is true while the latest issued cycle is in flight.
	Loading bool
	// Seq is the sequence number of the latest issued cycle.
	Seq uint64
	// TapPending is true while an interactive compact cycle is in flight.
	TapPending bool
	// Outcome is the latest applied cycle result.
	Outcome usecase.Outcome
	// Tree is the visual tree built from Outcome.
	Tree   surface.Tree
	Dialog *surface.Dialog

	// Status is a transient acknowledgement shown in the footer.
	Status   string
	StatusID int
}

// NextSeq issues a sequence number for a new cycle.
func (s *ModelState) NextSeq() uint64 {
	s.Seq++
	return s.Seq
}

// Stale reports whether a result belongs to a cycle superseded by a newer one.
func (s *ModelState) Stale(seq uint64) bool {
	return seq != s.Seq
}
