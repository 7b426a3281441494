// Package logging builds the structured logger shared by every surface.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tesso57/highlights/internal/application/settings"
)

// New creates a logger writing to w at the given level name.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Open builds the logger described by cfg. When cfg.File is set the log is
// appended to that file; the returned close func releases it.
func Open(cfg settings.LogConfig) (*log.Logger, func(), error) {
	if cfg.File == "" {
		return New(os.Stderr, cfg.Level), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, cfg.Level), func() { _ = f.Close() }, nil
}
