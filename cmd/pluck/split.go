package main

import (
	"github.com/spf13/cobra"

	"pluck/internal/splitter"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Duplicate stdin to both stdout and stderr",
	Long: `Split copies its standard input verbatim to both standard output and
standard error, one page-sized chunk at a time. Useful for feeding one
stream to a pipe while watching it on the terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return splitter.Split(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}
