package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/match"
)

func newMatchCmd() *cobra.Command {
	var (
		games  int
		width  int
		height int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play a series of bot-vs-bot games",
		Args:  cobra.NoArgs,
	}

	seatX := addSeatFlags(cmd, "x", model.BotStrategyLookahead)
	seatO := addSeatFlags(cmd, "o", model.BotStrategyHeuristic)
	cmd.Flags().IntVarP(&games, "games", "n", 10, "Number of games")
	cmd.Flags().IntVar(&width, "width", model.DefaultWidth, "Board width")
	cmd.Flags().IntVar(&height, "height", model.DefaultHeight, "Board height")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for bot randomness (0 for a random seed)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		x, err := seatX.seat()
		if err != nil {
			return fmt.Errorf("seat X: %w", err)
		}
		o, err := seatO.seat()
		if err != nil {
			return fmt.Errorf("seat O: %w", err)
		}

		app, err := factory.New(factory.Config{Logger: newLogger(cmd), Seed: seed})
		if err != nil {
			return err
		}
		defer app.Close()

		result, err := app.MatchRunner.Run(cmd.Context(), match.Config{
			Games:  games,
			Width:  width,
			Height: height,
			SeatX:  x,
			SeatO:  o,
		})
		if err != nil {
			return err
		}

		NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
		return nil
	}

	return cmd
}
