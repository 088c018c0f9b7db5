package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pluck/internal/config"
	"pluck/internal/logx"
	"pluck/internal/observ"
	"pluck/internal/selector"
)

func init() {
	rootCmd.Flags().BoolP("line-number", "n", false, "prefix each line with its 1-indexed number")
	rootCmd.Flags().String("separator", "", "separator between the line number and the text")
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	logger := logx.New(cmd.ErrOrStderr(), cfg.LogLevel, verbose)

	opts := selectOptions(cmd, cfg)

	in := cmd.InOrStdin()
	if len(args) == 2 {
		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[1], err)
		}
		defer closeQuietly(file, cmd.ErrOrStderr())
		in = file
	}

	logger.Debug().Str("patterns", args[0]).Bool("line_number", opts.ShowLineNumber).Msg("selecting lines")

	timer := observ.NewTimer()
	stop := timer.Track("stream")
	selErr := selector.Select(in, cmd.OutOrStdout(), args[0], opts)
	stop()

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		printTimings(cmd, cfg, timer)
	}
	if selErr != nil {
		logger.Debug().Err(selErr).Msg("selection failed")
		return selErr
	}
	return nil
}

// selectOptions merges the configured defaults with explicit flags;
// a flag set on the command line always wins.
func selectOptions(cmd *cobra.Command, cfg config.Config) selector.Options {
	opts := selector.Options{
		ShowLineNumber: cfg.LineNumber,
		Separator:      cfg.Separator,
	}
	if cmd.Flags().Changed("line-number") {
		opts.ShowLineNumber, _ = cmd.Flags().GetBool("line-number")
	}
	if cmd.Flags().Changed("separator") {
		opts.Separator, _ = cmd.Flags().GetString("separator")
	}
	return opts
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if path, _ := cmd.Root().PersistentFlags().GetString("config"); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func closeQuietly(file *os.File, errOut io.Writer) {
	if err := file.Close(); err != nil {
		fmt.Fprintf(errOut, "close %s: %v\n", file.Name(), err)
	}
}
