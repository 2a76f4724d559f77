// Package config loads editor configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all user-tunable settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile is where log lines go. Empty disables logging; the
	// terminal itself is never a log sink.
	LogFile string `toml:"log_file"`

	// ReadOnly opens files without allowing edits or saves.
	ReadOnly bool `toml:"read_only"`

	// ConfirmQuit asks before quitting with unsaved changes.
	ConfirmQuit bool `toml:"confirm_quit"`

	// WatchFile surfaces a notice when the open file changes on disk.
	WatchFile bool `toml:"watch_file"`

	// ScriptDir is where Lua hook and transform scripts live.
	ScriptDir string `toml:"script_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		WatchFile: true,
	}
}

// DefaultPath returns the standard config file location, or empty when
// no user config directory is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hexstorm", "config.toml")
}

// Load reads configuration from path, layered over the defaults.
// A missing file is not an error; the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
