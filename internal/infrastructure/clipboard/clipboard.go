// Package clipboard exposes the operating system clipboard as a copy capability.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard: unsupported on this system")

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	WriteAll(text string) error
}

// writeAll and unsupported are swapped in tests.
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// System writes to the OS clipboard.
type System struct{}

// Available reports whether a clipboard utility was found.
func (System) Available() bool {
	return !unsupported()
}

// WriteAll copies text to the clipboard.
func (s System) WriteAll(text string) error {
	if !s.Available() {
		return ErrUnsupported
	}
	return writeAll(text)
}

// Memory keeps the copied text in process. It backs tests and embedders that
// read the text back themselves; it is never a stand-in for the OS clipboard.
type Memory struct {
	Text string
}

// WriteAll stores text.
func (m *Memory) WriteAll(text string) error {
	m.Text = text
	return nil
}

// Default returns the system clipboard. On hosts without a clipboard utility
// every write fails with ErrUnsupported.
func Default() Writer {
	return System{}
}
