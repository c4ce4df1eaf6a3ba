package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/services/bot"
)

func newScoresCmd() *cobra.Command {
	var (
		width    int
		height   int
		ply      int
		tiebreak string
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "scores <moves>",
		Short: "Score every column for the side to move",
		Long: `Build a position from a string of column digits, played alternately
starting with X, and print the look-ahead score of every column for the side
to move. Spaces and commas in the move string are ignored.`,
		Example: `  c4 scores 3344 --ply 3
  c4 scores "" --ply 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := model.ParseTiebreakPolicy(tiebreak)
			if err != nil {
				return err
			}

			boardService := board.New(newLogger(cmd))
			b, next, err := boardService.BoardFromMoves(width, height, args[0])
			if err != nil {
				return err
			}

			var rnd random.Random = random.New()
			if seed != 0 {
				rnd = random.NewSeeded(seed)
			}
			analysis, err := bot.Analyze(b, next, ply, policy, rnd)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if cfg.Output == "json" {
				out.Print(scoresFromAnalysis(analysis))
				return nil
			}

			out.PrintBoard(b)
			if winner, over := boardService.Outcome(b); over {
				if winner.IsPlayer() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s has already won\n", winner)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "The board is full")
				}
			}
			out.Print(analysis)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", model.DefaultWidth, "Board width")
	cmd.Flags().IntVar(&height, "height", model.DefaultHeight, "Board height")
	cmd.Flags().IntVar(&ply, "ply", 4, fmt.Sprintf("Look-ahead depth (0-%d)", bot.MaxPly))
	cmd.Flags().StringVar(&tiebreak, "tiebreak", string(model.TiebreakLeft), "Tie-break for the best column: LEFT, RIGHT, RANDOM")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for RANDOM tie-breaks (0 for a random seed)")

	return cmd
}
