// Package config handles configuration loading and saving.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/tesso57/highlights/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// Load loads the configuration from the specified path or default location.
// Non-empty environment variables (including those from a .env file in the
// working directory) override the file, which overrides built-in defaults.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		configPath = DefaultPath()
	}

	if err := LoadEnv(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	_, statErr := os.Stat(configPath)
	if statErr == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	cfg.FeedURL = strings.TrimSpace(cfg.FeedURL)
	cfg.ViewerURL = strings.TrimSpace(cfg.ViewerURL)
	store.Settings = cfg

	// Save defaults if new file
	if os.IsNotExist(statErr) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// LoadEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables that are already set. Missing files are
// ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/highlights/config.yaml, falling back
// to ~/.config.
func DefaultPath() string {
	return filepath.Join(defaultConfigHome(), "highlights", "config.yaml")
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.configPath
}

func defaultConfigHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil // Return nil resolver (no op)
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		// A non-empty environment variable beats the file.
		for _, env := range flag.Envs {
			if v, ok := os.LookupEnv(env); ok && strings.TrimSpace(v) != "" {
				return nil, nil
			}
		}
		name := strings.ReplaceAll(flag.Name, "-", "_")
		if v, ok := values[name]; ok {
			return scalar(v), nil
		}
		return scalar(lookupNested(values, strings.Split(name, "."))), nil
	}
	return f, nil
}

// scalar renders YAML scalars as strings so kong's mappers parse them into
// the flag's own type (yaml decodes "2" as int even for a float64 flag).
func scalar(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return v
	case map[string]any, []any:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func lookupNested(values map[string]any, parts []string) any {
	if len(parts) < 2 {
		return nil
	}
	curr := values
	for i, part := range parts {
		v, ok := curr[part]
		if !ok {
			return nil
		}
		if i == len(parts)-1 {
			return v
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		curr = next
	}
	return nil
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}

// SetFeedURL updates the feed URL and saves the configuration.
func (s *Store) SetFeedURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("feed url must not be empty")
	}
	s.Settings.FeedURL = url
	return s.Save()
}

// SetViewerURL updates the viewer URL and saves the configuration.
// An empty URL restores the placeholder.
func (s *Store) SetViewerURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		url = settings.ViewerURLPlaceholder
	}
	s.Settings.ViewerURL = url
	return s.Save()
}
