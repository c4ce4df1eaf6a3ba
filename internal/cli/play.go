package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour-go/internal/factory"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	var (
		width      int
		height     int
		seed       uint64
		showScores bool
		scorePly   int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `Play a game of Connect Four in the terminal. Each seat is a human or a bot;
humans enter a column number on their turn, or q to quit.`,
		Args: cobra.NoArgs,
	}

	seatX := addSeatFlags(cmd, "x", seatHuman)
	seatO := addSeatFlags(cmd, "o", "lookahead")
	cmd.Flags().IntVar(&width, "width", model.DefaultWidth, "Board width")
	cmd.Flags().IntVar(&height, "height", model.DefaultHeight, "Board height")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for bot randomness (0 for a random seed)")
	cmd.Flags().BoolVar(&showScores, "show-scores", false, "Print the score vector before every move")
	cmd.Flags().IntVar(&scorePly, "score-ply", 4, "Look-ahead depth for scores shown on human turns")

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

		g, err := app.GameController.CreateGame(cmd.Context(), game.NewGameOptions{
			Width:  width,
			Height: height,
			SeatX:  x,
			SeatO:  o,
		})
		if err != nil {
			return err
		}

		p := &localGame{
			app:        app,
			out:        NewOutput("text", cmd.OutOrStdout()),
			in:         bufio.NewScanner(cmd.InOrStdin()),
			showScores: showScores,
			scorePly:   scorePly,
		}
		return p.run(cmd, g)
	}

	return cmd
}

// localGame drives one in-process game from the terminal
type localGame struct {
	app        *factory.App
	out        *Output
	in         *bufio.Scanner
	showScores bool
	scorePly   int
}

func (p *localGame) run(cmd *cobra.Command, g *model.Game) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	p.out.PrintBoard(g.Board)

	for !g.IsFinished() {
		checker := g.NextChecker
		seat := g.Seat(checker)

		if p.showScores {
			ply, tiebreak := p.scorePly, model.TiebreakLeft
			if seat.IsBot && seat.Strategy == model.BotStrategyLookahead {
				ply, tiebreak = seat.Ply, seat.Tiebreak
			}
			analysis, err := p.app.BotService.Analyze(ctx, g.ID, ply, tiebreak)
			if err != nil {
				return err
			}
			p.out.Print(analysis)
		}

		if seat.IsBot {
			move, err := p.app.BotService.PlayBotTurn(ctx, g.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s (%s) plays column %d\n", checker, seat.Name, move.Column)
			g = move.Game
			p.out.PrintBoard(g.Board)
			continue
		}

		col, quit, err := p.readColumn(w, checker, seat)
		if err != nil {
			return err
		}
		if quit {
			if err := p.app.GameController.AbandonGame(ctx, g.ID); err != nil {
				return err
			}
			fmt.Fprintln(w, "Game abandoned.")
			return nil
		}

		next, err := p.app.GameController.PlayMove(ctx, g.ID, checker, col)
		if errors.Is(err, model.ErrInvalidColumn) || errors.Is(err, model.ErrColumnFull) {
			fmt.Fprintf(w, "You can't go there: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		g = next
		p.out.PrintBoard(g.Board)
	}

	switch g.State {
	case model.GameStateWon:
		fmt.Fprintf(w, "%s wins! Congratulations!\n", g.Winner)
	case model.GameStateDraw:
		fmt.Fprintln(w, "The game is a draw.")
	}
	return nil
}

// readColumn prompts until the human enters a number or quits. End of input
// counts as quitting.
func (p *localGame) readColumn(w io.Writer, checker model.Checker, seat model.Seat) (col int, quit bool, err error) {
	for {
		fmt.Fprintf(w, "Next column for %s (%s): ", checker, seat.Name)
		if !p.in.Scan() {
			fmt.Fprintln(w)
			return 0, true, p.in.Err()
		}

		line := strings.TrimSpace(p.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return 0, true, nil
		}

		col, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(w, "Not a column number: %q\n", line)
			continue
		}
		return col, false, nil
	}
}
