package tui

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// ErrNoViewerHandler is returned on platforms without a known URL handler.
var ErrNoViewerHandler = errors.New("no handler for opening the viewer on this platform")

// viewerCommand builds the process that hands a URL to the desktop. Tests
// replace it.
var viewerCommand = func(target string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", target)
	default:
		return nil
	}
}

// OpenBrowser opens the viewer page at target. Only absolute http and https
// URLs are handed to the desktop.
func OpenBrowser(target string) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("viewer url %q is not an http(s) address", target)
	}
	cmd := viewerCommand(u.String())
	if cmd == nil {
		return ErrNoViewerHandler
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open viewer: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
