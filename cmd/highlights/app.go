package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tesso57/highlights/internal/application/derive"
	"github.com/tesso57/highlights/internal/application/settings"
	"github.com/tesso57/highlights/internal/application/usecase"
	"github.com/tesso57/highlights/internal/infrastructure/clipboard"
	"github.com/tesso57/highlights/internal/infrastructure/config"
	"github.com/tesso57/highlights/internal/infrastructure/feed"
	"github.com/tesso57/highlights/internal/infrastructure/logging"
	"github.com/tesso57/highlights/internal/presentation/surface/adaptive"
	"github.com/tesso57/highlights/internal/presentation/surface/compact"
	"github.com/tesso57/highlights/internal/presentation/tui"
	"github.com/tesso57/highlights/internal/presentation/tui/state"
	"github.com/tesso57/highlights/internal/presentation/web"
)

// CLI is the command-line surface.
type CLI struct {
	Config    string `help:"Path to the config file." type:"path" env:"HIGHLIGHTS_CONFIG"`
	FeedURL   string `name:"feed-url" help:"Feed URL for this run (overrides feed_url)."`
	ViewerURL string `name:"viewer-url" help:"Viewer URL for this run (overrides viewer_url)."`

	Serve     ServeCmd     `cmd:"" help:"Serve the highlights web page."`
	Compact   CompactCmd   `cmd:"" help:"Draw the compact widget once."`
	Adaptive  AdaptiveCmd  `cmd:"" help:"Draw the adaptive widget once."`
	Watch     WatchCmd     `cmd:"" help:"Host a widget in the terminal, refreshing periodically."`
	Configure ConfigureCmd `cmd:"" help:"Update feed and viewer URLs in the config file."`
}

// Apply returns cfg with the per-run URL flags applied. Nothing is persisted.
func (c CLI) Apply(cfg settings.Settings) settings.Settings {
	if v := strings.TrimSpace(c.FeedURL); v != "" {
		cfg.FeedURL = v
	}
	if v := strings.TrimSpace(c.ViewerURL); v != "" {
		cfg.ViewerURL = v
	}
	return cfg
}

// App carries the wired dependencies every command runs against.
type App struct {
	Settings   settings.Settings
	Store      *config.Store
	Logger     *log.Logger
	Highlights *usecase.HighlightService
	Clipboard  clipboard.Writer
	Open       func(string) error
	Out        io.Writer
}

// newApp wires the feed client, render-cycle service and logger from the
// loaded configuration.
func newApp(store *config.Store, out io.Writer) (*App, func(), error) {
	cfg := store.Settings
	logger, closeLog, err := logging.Open(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	client := feed.NewClient(feed.OptionsFromSettings(cfg))
	svc := usecase.NewHighlightService(client, logger, time.Now)

	return &App{
		Settings:   cfg,
		Store:      store,
		Logger:     logger,
		Highlights: &svc,
		Clipboard:  clipboard.Default(),
		Open:       tui.OpenBrowser,
		Out:        out,
	}, closeLog, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// ServeCmd runs the web page host.
type ServeCmd struct {
	Addr string `help:"Listen address (defaults to server.addr)."`
}

// Run implements the serve command.
func (c *ServeCmd) Run(app *App) error {
	addr := c.Addr
	if addr == "" {
		addr = app.Settings.Server.Addr
	}
	srv, err := web.New(app.Settings, *app.Highlights, app.Logger)
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()
	return srv.Start(ctx, addr)
}

// CompactCmd draws one compact widget cycle.
type CompactCmd struct {
	Interactive bool `help:"Act as a tap: copy the latest highlight instead of drawing the widget."`
}

// Run implements the compact command.
func (c *CompactCmd) Run(app *App) error {
	ctx, stop := signalContext()
	defer stop()

	inv := compact.BackgroundRefresh
	if c.Interactive {
		inv = compact.Interactive
	}
	out := app.Highlights.Load(ctx, app.Settings.FeedURL)
	res := compact.Render(out, inv, app.Highlights.CurrentTime(), app.Clipboard)
	if res.Dialog != nil {
		_, err := fmt.Fprintln(app.Out, tui.DialogSnapshot(app.Settings.Theme, *res.Dialog))
		return err
	}
	_, err := fmt.Fprintln(app.Out, tui.Snapshot(app.Settings.Theme, state.CompactSurface, derive.Medium, res.Tree))
	return err
}

// AdaptiveCmd draws one adaptive widget cycle.
type AdaptiveCmd struct {
	Size string `help:"Widget size: small, medium or large (defaults to widget.size)."`
	Tap  bool   `help:"Open the viewer page after drawing, as a tap would."`
}

// Run implements the adaptive command.
func (c *AdaptiveCmd) Run(app *App) error {
	ctx, stop := signalContext()
	defer stop()

	size := derive.ParseSize(firstNonEmpty(c.Size, app.Settings.Widget.Size))
	out := app.Highlights.Load(ctx, app.Settings.FeedURL)
	tree := adaptive.Render(out, size, app.Settings.ViewerTarget(), app.Highlights.CurrentTime())
	if _, err := fmt.Fprintln(app.Out, tui.Snapshot(app.Settings.Theme, state.AdaptiveSurface, size, tree)); err != nil {
		return err
	}
	if c.Tap && tree.Tap != nil && app.Open != nil {
		return app.Open(tree.Tap.URL)
	}
	return nil
}

// WatchCmd hosts a widget in the terminal.
type WatchCmd struct {
	Surface string `arg:"" enum:"compact,adaptive" help:"Widget to host: compact or adaptive."`
	Size    string `help:"Adaptive widget size (defaults to widget.size)."`
}

// Run implements the watch command.
func (c *WatchCmd) Run(app *App) error {
	surf, _ := state.ParseSurface(c.Surface)
	model := tui.NewModel(app.Settings, app.Highlights, tui.Options{
		Surface:   surf,
		Size:      derive.ParseSize(firstNonEmpty(c.Size, app.Settings.Widget.Size)),
		Clipboard: app.Clipboard,
	})
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// ConfigureCmd updates the persisted configuration.
type ConfigureCmd struct {
	Feed   *string `help:"Raw URL of the highlights JSON feed."`
	Viewer *string `help:"Web page URL opened by the adaptive widget tap. An empty value clears it."`
}

// Run implements the configure command. Flags that were not given leave the
// stored value alone.
func (c *ConfigureCmd) Run(app *App) error {
	if c.Feed != nil {
		if err := app.Store.SetFeedURL(*c.Feed); err != nil {
			return err
		}
	}
	if c.Viewer != nil {
		if err := app.Store.SetViewerURL(*c.Viewer); err != nil {
			return err
		}
	}
	s := app.Store.Settings
	_, err := fmt.Fprintf(app.Out, "config:     %s\nfeed_url:   %s\nviewer_url: %s\n",
		app.Store.Path(), s.FeedURL, s.ViewerURL)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
