// Package config loads previewer settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the server settings. Values absent from the file keep their
// defaults; command-line flags override both.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// OpenBrowser opens the rendered document in the default browser on
	// startup.
	OpenBrowser bool `yaml:"open_browser"`
	// LiveReload enables the /watch subscription and page reload wiring.
	LiveReload bool `yaml:"live_reload"`
	// HighlightStyle is the chroma style used for fenced code blocks.
	HighlightStyle string `yaml:"highlight_style"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:           "0.0.0.0:3000",
		OpenBrowser:    true,
		LiveReload:     true,
		HighlightStyle: "github",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
