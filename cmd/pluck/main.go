package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pluck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pluck [flags] patterns [file]",
	Short: "Select lines from a file or stdin by range patterns",
	Long: `Pluck reads a file (or stdin) once and prints only the lines whose
1-indexed positions match a comma-separated list of range patterns.

Pattern examples:

  "5"      line 5
  "1,6,7"  lines 1, 6 and 7
  "5..7"   lines 5 and 6 (end exclusive)
  "5..=7"  lines 5, 6 and 7 (end inclusive)
  "1,5..7" line 1, then lines 5 and 6
  ".."     every line
  "5.."    everything from line 5 on
  "..7"    everything before line 7
  "..=7"   everything up to and including line 7

Patterns must be given in ascending order: the input is consumed in a
single forward pass, so a range may not start before the previous one
ends. Reading stops as soon as no pattern can match a later line, which
makes pluck usable on unbounded streams.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSelect,
}

// main регистрирует подкоманды и глобальные флаги и запускает root-команду.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "", "colorize auxiliary output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information on stderr")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug diagnostics on stderr")
	rootCmd.PersistentFlags().String("config", "", "path to the config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
