package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/cryptarithm"
	"github.com/gitrdm/gocsp/pkg/csp"
)

// NewCryptarithmCommand creates the cryptarithm command.
func NewCryptarithmCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cryptarithm <puzzle>",
		Short: "Solve a cryptarithmetic puzzle",
		Long: `Solve a two-addend cryptarithmetic puzzle where every letter stands
for a distinct decimal digit and leading digits are nonzero.

Example:
  gocsp cryptarithm "SEND + MORE = MONEY"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pz, err := cryptarithm.Parse(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			err = pz.Solve()
			stats := pz.Problem().Stats()
			slog.Debug("search finished",
				"elapsed", time.Since(start),
				"nodes", stats.Nodes,
				"backjumps", stats.Backjumps,
				"pruned", stats.ValuesPruned)

			if errors.Is(err, csp.ErrNoSolution) {
				fmt.Fprintln(cmd.OutOrStdout(), "No solution.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pz.Grid())
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), pz.Render())
			return nil
		},
	}
}
