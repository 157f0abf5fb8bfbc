package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/wordsquare"
)

// WordSquareOptions holds flags for the wordsquare command.
type WordSquareOptions struct {
	*RootOptions
	Words    string
	Size     int
	Diagonal bool
}

// NewWordSquareCommand creates the wordsquare command.
func NewWordSquareCommand(root *RootOptions) *cobra.Command {
	opts := &WordSquareOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "wordsquare",
		Short: "Find a word square from a dictionary",
		Long: `Find an n-by-n grid of letters whose rows and columns all spell
words from the given dictionary (one word per line).

Example:
  gocsp wordsquare --words /usr/share/dict/words --size 5 --diagonal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := wordsquare.LoadFile(opts.Words)
			if err != nil {
				return err
			}
			slog.Debug("dictionary loaded", "path", opts.Words, "usable", len(dict.Words(opts.Size)))

			sq := dict.Square(opts.Size, opts.Diagonal)
			start := time.Now()
			err = sq.Solve()
			stats := sq.Problem().Stats()
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
			fmt.Fprintln(cmd.OutOrStdout(), sq.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Words, "words", "", "path to the word list (required)")
	cmd.Flags().IntVar(&opts.Size, "size", 5, "square size")
	cmd.Flags().BoolVar(&opts.Diagonal, "diagonal", false, "require the main diagonal to spell a word")
	_ = cmd.MarkFlagRequired("words")

	return cmd
}
