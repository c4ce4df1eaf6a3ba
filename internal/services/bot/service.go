package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/game"
)

// MaxBotIterations is a safety limit for the ProcessBotMoves loop
const MaxBotIterations = 1000

// BotMove records a single move made by a bot during ProcessBotMoves
type BotMove struct {
	Checker  model.Checker
	Column   int
	Strategy string
	Game     *model.Game // Game state after the move
}

// Service drives bot seats and analyses positions
type Service struct {
	gameController game.ControllerInterface
	random         random.Random
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController game.ControllerInterface,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		random:         rnd,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// ProcessBotMoves plays consecutive bot turns until a human is to move or
// the game ends. It returns every move made so callers can broadcast them.
func (s *Service) ProcessBotMoves(ctx context.Context, gameID model.GameID) ([]BotMove, error) {
	var moves []BotMove

	for i := 0; i < MaxBotIterations; i++ {
		move, err := s.PlayBotTurn(ctx, gameID)
		if err != nil {
			return moves, err
		}
		if move == nil {
			break // Game over or a human's turn
		}
		moves = append(moves, *move)
	}

	return moves, nil
}

// PlayBotTurn plays one move for the bot seat holding the turn. It returns
// nil when the game is over or a human is to move.
func (s *Service) PlayBotTurn(ctx context.Context, gameID model.GameID) (*BotMove, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !g.BotToMove() {
		return nil, nil
	}

	seat := g.Seat(g.NextChecker)
	strategy, err := StrategyForSeat(seat, s.random)
	if err != nil {
		return nil, err
	}

	col, err := strategy.ChooseColumn(g.Board, g.NextChecker)
	if err != nil {
		return nil, err
	}

	after, err := s.gameController.PlayMove(ctx, gameID, g.NextChecker, col)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("bot moved",
		slog.String("game_id", string(gameID)),
		slog.String("checker", g.NextChecker.String()),
		slog.String("strategy", seat.Strategy),
		slog.Int("column", col),
	)

	return &BotMove{
		Checker:  g.NextChecker,
		Column:   col,
		Strategy: seat.Strategy,
		Game:     after,
	}, nil
}

// Analyze scores the position of a game for the side to move
func (s *Service) Analyze(ctx context.Context, gameID model.GameID, ply int, tiebreak model.TiebreakPolicy) (*Analysis, error) {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if g.IsFinished() {
		return nil, gameOverError(g)
	}
	return Analyze(g.Board, g.NextChecker, ply, tiebreak, s.random)
}

func gameOverError(g *model.Game) error {
	if g.State == model.GameStateAbandoned {
		return model.ErrGameAbandoned
	}
	return model.ErrGameComplete
}
