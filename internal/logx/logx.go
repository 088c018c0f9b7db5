// Package logx configures the zerolog logger used for CLI diagnostics.
// Diagnostics go to stderr so they never mix with selected lines on
// stdout.
package logx

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger at the given level. An unknown level
// falls back to warn; verbose forces debug.
func New(out io.Writer, level string, verbose bool) zerolog.Logger {
	lvl := ParseLevel(level)
	if verbose {
		lvl = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// ParseLevel maps a config string to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
