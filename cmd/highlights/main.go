// Command highlights presents e-reader highlights from a remote JSON feed as
// a web page and as terminal widgets.
//
// Usage:
//
//	highlights serve                      Serve the web page
//	highlights compact [--interactive]    Draw the compact widget once
//	highlights adaptive [--size] [--tap]  Draw the adaptive widget once
//	highlights watch compact|adaptive     Host a widget in the terminal
//	highlights configure --feed URL       Update the config file
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/tesso57/highlights/internal/infrastructure/config"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("highlights"),
		kong.Description("Kindle highlights on the web and in widgets."),
		kong.UsageOnError(),
	)

	store, err := config.Load(cli.Config)
	if err != nil {
		log.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	app, closeApp, err := newApp(store, os.Stdout)
	if err != nil {
		log.Error("failed to start", "err", err)
		os.Exit(1)
	}
	defer closeApp()
	app.Settings = cli.Apply(app.Settings)

	if err := ctx.Run(app); err != nil {
		app.Logger.Error("command failed", "cmd", ctx.Command(), "err", err)
		closeApp()
		os.Exit(1)
	}
}
