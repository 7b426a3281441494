package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// FooterText returns the footer content: a pending acknowledgement wins over
// the loading indicator, which wins over the help line.
func FooterText(loading bool, spinnerView, status, helpText string) string {
	if s := strings.TrimSpace(status); s != "" {
		return s
	}
	if loading {
		return strings.TrimSpace(spinnerView + " Refreshing...")
	}
	return helpText
}

// FooterHelpText renders the short help line for the widget host.
func FooterHelpText(h help.Model, keys KeyMap) string {
	return h.ShortHelpView(keys.ShortHelp())
}
