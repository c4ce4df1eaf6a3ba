package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands against the server",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameMoveCmd())
	cmd.AddCommand(newGameScoresCmd())
	cmd.AddCommand(newGameAbandonCmd())
	cmd.AddCommand(newGameSummariesCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new game",
		Args:  cobra.NoArgs,
	}

	seatX := addSeatFlags(cmd, "x", seatHuman)
	seatO := addSeatFlags(cmd, "o", model.BotStrategyLookahead)
	cmd.Flags().IntVar(&width, "width", model.DefaultWidth, "Board width")
	cmd.Flags().IntVar(&height, "height", model.DefaultHeight, "Board height")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		x, err := seatX.request()
		if err != nil {
			return fmt.Errorf("seat X: %w", err)
		}
		o, err := seatO.request()
		if err != nil {
			return fmt.Errorf("seat O: %w", err)
		}

		req := map[string]any{
			"width":  width,
			"height": height,
			"seat_x": x,
			"seat_o": o,
		}
		var result MoveResult

		if err := client.Post("/api/v1/games", req, &result); err != nil {
			return err
		}

		out := NewOutput(cfg.Output, cmd.OutOrStdout())
		out.Print(result)
		return nil
	}

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", url.PathEscape(args[0])), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameMoveCmd() *cobra.Command {
	var checker string

	cmd := &cobra.Command{
		Use:   "move <id> <column>",
		Short: "Drop a checker; bot seats reply before this returns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid column: %w", err)
			}

			req := map[string]any{"column": col}
			if checker != "" {
				req["checker"] = checker
			}
			var result MoveResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", url.PathEscape(args[0])), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&checker, "checker", "", "Checker to play (X or O); defaults to the side to move")
	return cmd
}

func newGameScoresCmd() *cobra.Command {
	var (
		ply      int
		tiebreak string
	)

	cmd := &cobra.Command{
		Use:   "scores <id>",
		Short: "Score every column for the side to move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			query.Set("ply", strconv.Itoa(ply))
			query.Set("tiebreak", tiebreak)

			var result Scores
			path := fmt.Sprintf("/api/v1/games/%s/scores?%s", url.PathEscape(args[0]), query.Encode())
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&ply, "ply", 4, "Look-ahead depth")
	cmd.Flags().StringVar(&tiebreak, "tiebreak", string(model.TiebreakLeft), "Tie-break for the best column: LEFT, RIGHT, RANDOM")
	return cmd
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <id>",
		Short: "Abandon a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/games/%s", url.PathEscape(args[0]))); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Game abandoned")
			return nil
		},
	}
}

func newGameSummariesCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "summaries",
		Short: "List recently completed games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Summaries

			if err := client.Get(fmt.Sprintf("/api/v1/summaries?limit=%d", limit), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of games to list")
	return cmd
}
