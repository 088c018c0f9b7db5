// Package config loads user-level defaults for the pluck CLI.
//
// Precedence, lowest to highest: built-in defaults, the optional TOML
// config file, PLUCK_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment overrides (PLUCK_SEPARATOR etc).
const envPrefix = "pluck"

// Config holds the tunable defaults of one pluck invocation.
type Config struct {
	// LineNumber prefixes emitted lines with their 1-indexed number.
	// Env: PLUCK_LINE_NUMBER
	LineNumber bool `toml:"line_number" envconfig:"LINE_NUMBER"`

	// Separator sits between the line number and the text.
	// Env: PLUCK_SEPARATOR (default: tab)
	Separator string `toml:"separator" envconfig:"SEPARATOR"`

	// Color controls colorized auxiliary output (auto|on|off).
	// Env: PLUCK_COLOR (default: auto)
	Color string `toml:"color" envconfig:"COLOR"`

	// LogLevel is the verbosity of diagnostics on stderr.
	// Env: PLUCK_LOG_LEVEL (default: warn)
	LogLevel string `toml:"log_level" envconfig:"LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Separator: "\t",
		Color:     "auto",
		LogLevel:  "warn",
	}
}

// DefaultPath returns the conventional location of the config file
// under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "pluck", "config.toml"), nil
}

// Load reads the config file at the conventional location, if any, and
// applies environment overrides. When no user config directory can be
// resolved, only defaults and the environment apply.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		path = ""
	}
	return LoadFrom(path)
}

// LoadFrom reads the config file at path and applies environment
// overrides. A missing file is not an error; a malformed one is.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read PLUCK_* environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color mode %q (must be auto, on or off)", c.Color)
	}
	return nil
}
