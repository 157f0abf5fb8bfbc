package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/model"
)

// NewSolveCommand creates the solve command for YAML-defined problems.
func NewSolveCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <problem.yaml>",
		Short: "Solve a YAML-defined constraint problem",
		Long: `Solve a problem defined declaratively in YAML: a table of symbolic
values, variables over it, and all-distinct / not-equal constraint groups.

Example:
  gocsp solve australia.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := model.ParseFile(args[0])
			if err != nil {
				return err
			}
			in, err := spec.Build()
			if err != nil {
				return err
			}

			start := time.Now()
			err = in.Solve()
			stats := in.Problem().Stats()
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

			assignment := in.Assignment()
			names := make([]string, 0, len(assignment))
			for name := range assignment {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, assignment[name])
			}
			return nil
		},
	}
}
