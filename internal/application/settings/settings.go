// Package settings defines application-level configuration data.
package settings

import (
	"strings"
	"time"
)

const (
	// FeedURLPlaceholder is the value shipped in a fresh config before deployment.
	FeedURLPlaceholder = "YOUR_GIST_RAW_URL_HERE"
	// ViewerURLPlaceholder marks an unset destination for the "view all" tap target.
	ViewerURLPlaceholder = "YOUR_GITHUB_PAGES_URL_HERE"
)

// KeyMapConfig defines the configuration for keybindings of the widget host.
type KeyMapConfig struct {
	Tap     string `yaml:"tap" kong:"help='Tap (widget action) key',default='enter'"`
	Copy    string `yaml:"copy" kong:"help='Copy highlight key',default='c'"`
	Refresh string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	Dismiss string `yaml:"dismiss" kong:"help='Dismiss dialog key',default='esc'"`
	Quit    string `yaml:"quit" kong:"help='Quit key',default='q,ctrl+c'"`
}

// ThemeConfig maps the color roles of a rendered surface to terminal colors.
type ThemeConfig struct {
	Background string `yaml:"background" kong:"help='Widget background color',default='#1a1a1a'"`
	Primary    string `yaml:"primary" kong:"help='Highlight text color',default='#ffffff'"`
	Secondary  string `yaml:"secondary" kong:"help='Book title color',default='#a0a0a0'"`
	Muted      string `yaml:"muted" kong:"help='Timestamp and message color',default='#666666'"`
	Accent     string `yaml:"accent" kong:"help='Hint color',default='#4f9cf9'"`
	Warning    string `yaml:"warning" kong:"help='Warning color',default='#ff9500'"`
}

// FetchConfig tunes the feed client.
type FetchConfig struct {
	TimeoutSeconds    int     `yaml:"timeout_seconds" kong:"help='Feed request timeout in seconds',default='10'"`
	RequestsPerSecond float64 `yaml:"requests_per_second" kong:"help='Outbound feed request rate limit',default='2'"`
	Burst             int     `yaml:"burst" kong:"help='Outbound feed request burst',default='4'"`
	UserAgent         string  `yaml:"user_agent" kong:"help='User-Agent header',default='Highlights/1.0'"`
}

// ServerConfig configures the web page host.
type ServerConfig struct {
	Addr string `yaml:"addr" kong:"help='Listen address',default=':8080',env='HIGHLIGHTS_ADDR'"`
}

// WidgetConfig configures the terminal widget surfaces.
type WidgetConfig struct {
	Size           string `yaml:"size" kong:"help='Adaptive widget size (small/medium/large)',default='medium'"`
	RefreshMinutes int    `yaml:"refresh_minutes" kong:"help='Widget refresh interval in minutes',default='15'"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" kong:"help='Log level (debug/info/warn/error)',default='info',env='HIGHLIGHTS_LOG_LEVEL'"`
	File  string `yaml:"file" kong:"help='Log file path (stderr when empty)'"`
}

// Settings represents the application configuration.
type Settings struct {
	FeedURL   string       `yaml:"feed_url" kong:"help='Raw URL of the highlights JSON feed',default='YOUR_GIST_RAW_URL_HERE',env='HIGHLIGHTS_FEED_URL'"`
	ViewerURL string       `yaml:"viewer_url" kong:"help='Web page URL opened by the adaptive widget',default='YOUR_GITHUB_PAGES_URL_HERE',env='HIGHLIGHTS_VIEWER_URL'"`
	Fetch     FetchConfig  `yaml:"fetch" kong:"embed,prefix='fetch.'"`
	Server    ServerConfig `yaml:"server" kong:"embed,prefix='server.'"`
	Widget    WidgetConfig `yaml:"widget" kong:"embed,prefix='widget.'"`
	KeyMap    KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme     ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Log       LogConfig    `yaml:"log" kong:"embed,prefix='log.'"`
}

// IsPlaceholder reports whether a feed URL is unset.
func IsPlaceholder(url string) bool {
	url = strings.TrimSpace(url)
	return url == "" || url == FeedURLPlaceholder
}

// FeedConfigured reports whether the feed URL has been set.
func (s Settings) FeedConfigured() bool {
	return !IsPlaceholder(s.FeedURL)
}

// ViewerTarget returns the destination of the "view all" tap target, or ""
// when none has been configured.
func (s Settings) ViewerTarget() string {
	url := strings.TrimSpace(s.ViewerURL)
	if url == ViewerURLPlaceholder {
		return ""
	}
	return url
}

// FetchTimeout returns the feed request timeout.
func (s Settings) FetchTimeout() time.Duration {
	if s.Fetch.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.Fetch.TimeoutSeconds) * time.Second
}

// RefreshInterval returns how often a widget host refreshes.
func (s Settings) RefreshInterval() time.Duration {
	if s.Widget.RefreshMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(s.Widget.RefreshMinutes) * time.Minute
}
