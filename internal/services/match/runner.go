package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/services/bot"
)

// Config describes a series of bot-vs-bot games
type Config struct {
	Games  int
	Width  int
	Height int
	SeatX  model.Seat
	SeatO  model.Seat
}

// GameResult is the outcome of one game in a match
type GameResult struct {
	Winner model.Checker `json:"winner"` // CheckerEmpty for a draw
	Moves  []int         `json:"moves"`
}

// Result tallies a finished match
type Result struct {
	XWins int          `json:"x_wins"`
	OWins int          `json:"o_wins"`
	Draws int          `json:"draws"`
	Games []GameResult `json:"games"`
}

// Runner plays matches between two bot seats. X moves first in every game.
type Runner struct {
	boardService *board.Service
	random       random.Random
	logger       *slog.Logger
}

// NewRunner creates a new match Runner
func NewRunner(boardService *board.Service, rnd random.Random, logger *slog.Logger) *Runner {
	return &Runner{
		boardService: boardService,
		random:       rnd,
		logger:       logger.With(slog.String("component", "match-runner")),
	}
}

// Run plays cfg.Games games and returns the tally
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Games < 1 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if !cfg.SeatX.IsBot || !cfg.SeatO.IsBot {
		return nil, fmt.Errorf("%w: both seats must be bots", model.ErrNotBot)
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = model.DefaultWidth
	}
	if height == 0 {
		height = model.DefaultHeight
	}
	b, err := r.boardService.CreateBoard(width, height)
	if err != nil {
		return nil, err
	}

	if err := cfg.SeatX.ValidateFor(width); err != nil {
		return nil, fmt.Errorf("seat X: %w", err)
	}
	if err := cfg.SeatO.ValidateFor(width); err != nil {
		return nil, fmt.Errorf("seat O: %w", err)
	}
	stratX, err := bot.StrategyForSeat(cfg.SeatX, r.random)
	if err != nil {
		return nil, fmt.Errorf("seat X: %w", err)
	}
	stratO, err := bot.StrategyForSeat(cfg.SeatO, r.random)
	if err != nil {
		return nil, fmt.Errorf("seat O: %w", err)
	}

	result := &Result{Games: make([]GameResult, 0, cfg.Games)}
	for i := 0; i < cfg.Games; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		b.Clear()
		game, err := r.playGame(b, stratX, stratO)
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch game.Winner {
		case model.CheckerX:
			result.XWins++
		case model.CheckerO:
			result.OWins++
		default:
			result.Draws++
		}
		result.Games = append(result.Games, game)
	}

	r.logger.Info("match finished",
		slog.Int("games", cfg.Games),
		slog.Int("x_wins", result.XWins),
		slog.Int("o_wins", result.OWins),
		slog.Int("draws", result.Draws),
	)

	return result, nil
}

// playGame plays one game on an empty board
func (r *Runner) playGame(b *model.Board, stratX, stratO bot.Strategy) (GameResult, error) {
	var moves []int
	next := model.CheckerX

	for {
		strategy := stratX
		if next == model.CheckerO {
			strategy = stratO
		}

		col, err := strategy.ChooseColumn(b, next)
		if err != nil {
			return GameResult{}, err
		}
		if err := r.boardService.PlaceChecker(b, col, next); err != nil {
			return GameResult{}, err
		}
		moves = append(moves, col)

		if winner, over := r.boardService.Outcome(b); over {
			return GameResult{Winner: winner, Moves: moves}, nil
		}
		next = next.Opponent()
	}
}
