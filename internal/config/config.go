// Package config loads optional settings for programs embedding the
// qedit engine. The engine itself is configured through functional
// options; this package only maps a host-level settings file onto
// those options.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds host-level editor settings.
type Config struct {
	// File is an optional path opened into the editor at startup.
	File string `toml:"file" yaml:"file"`

	// MaxUndoEntries caps the undo stack. Zero means the engine default.
	MaxUndoEntries int `toml:"max_undo_entries" yaml:"max_undo_entries"`

	// ReadOnly opens the editor in read-only mode.
	ReadOnly bool `toml:"read_only" yaml:"read_only"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{}
}

// Load reads configuration from path, decoding TOML or YAML by file
// extension. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing YAML config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if cfg.MaxUndoEntries < 0 {
		return cfg, fmt.Errorf("max_undo_entries must not be negative, got %d", cfg.MaxUndoEntries)
	}

	return cfg, nil
}
