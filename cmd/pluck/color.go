package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pluck/internal/config"
	"pluck/internal/observ"
)

var timingColor = color.New(color.FgCyan)

// colorMode returns the effective color mode: the --color flag when
// given, otherwise the configured default.
func colorMode(cmd *cobra.Command, cfg config.Config) string {
	if mode, _ := cmd.Root().PersistentFlags().GetString("color"); mode != "" {
		return mode
	}
	return cfg.Color
}

// resolveColor decides whether output written to f should be colorized.
func resolveColor(mode string, f *os.File) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func printTimings(cmd *cobra.Command, cfg config.Config, timer *observ.Timer) {
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); quiet {
		return
	}
	out := cmd.ErrOrStderr()
	if resolveColor(colorMode(cmd, cfg), os.Stderr) {
		_, _ = timingColor.Fprint(out, timer.Summary())
		return
	}
	fmt.Fprint(out, timer.Summary())
}
