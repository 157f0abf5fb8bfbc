// Package cli wires the solver packages into the gocsp command-line tool.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the gocsp root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gocsp",
		Short: "Finite-domain constraint solver",
		Long: `gocsp solves finite-domain constraint-satisfaction problems:
cryptarithmetic puzzles, word squares, and YAML-defined problems such as
map coloring.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCryptarithmCommand(opts))
	cmd.AddCommand(NewWordSquareCommand(opts))
	cmd.AddCommand(NewSolveCommand(opts))

	return cmd
}
