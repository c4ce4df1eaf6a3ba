package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12

	// gameLockStripes is the number of mutexes that serialize updates to
	// games in this process
	gameLockStripes = 64
)

// NewGameOptions configures a new game. Zero dimensions fall back to the
// standard 7x6 board.
type NewGameOptions struct {
	Width  int
	Height int
	SeatX  model.Seat
	SeatO  model.Seat
}

// Controller manages the game state machine and turn flow
type Controller struct {
	storage      storage.Storage
	boardService *board.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger

	locks [gameLockStripes]sync.Mutex
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		boardService: boardService,
		clock:        clock,
		random:       random,
		logger:       logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame initializes a new game. X always moves first.
func (c *Controller) CreateGame(ctx context.Context, opts NewGameOptions) (*model.Game, error) {
	width, height := opts.Width, opts.Height
	if width == 0 {
		width = model.DefaultWidth
	}
	if height == 0 {
		height = model.DefaultHeight
	}

	b, err := c.boardService.CreateBoard(width, height)
	if err != nil {
		return nil, err
	}
	if err := opts.SeatX.ValidateFor(width); err != nil {
		return nil, fmt.Errorf("seat X: %w", err)
	}
	if err := opts.SeatO.ValidateFor(width); err != nil {
		return nil, fmt.Errorf("seat O: %w", err)
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		State:       model.GameStateInProgress,
		Board:       b,
		SeatX:       withDefaultName(opts.SeatX, "Player X"),
		SeatO:       withDefaultName(opts.SeatO, "Player O"),
		NextChecker: model.CheckerX,
		Winner:      model.CheckerEmpty,
		Moves:       []int{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Bool("x_is_bot", game.SeatX.IsBot),
		slog.Bool("o_is_bot", game.SeatO.IsBot),
	)

	return game, nil
}

func withDefaultName(seat model.Seat, name string) model.Seat {
	if seat.Name == "" {
		seat.Name = name
	}
	return seat
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// PlayMove drops checker into col for the side to move and detects the end
// of the game
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, checker model.Checker, col int) (*model.Game, error) {
	defer c.lockGame(gameID)()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	// Validate game state
	switch game.State {
	case model.GameStateWon, model.GameStateDraw:
		return nil, model.ErrGameComplete
	case model.GameStateAbandoned:
		return nil, model.ErrGameAbandoned
	}

	// Validate it's this checker's turn
	if checker != game.NextChecker {
		return nil, model.ErrNotPlayerTurn
	}

	if err := c.boardService.PlaceChecker(game.Board, col, checker); err != nil {
		return nil, err
	}
	game.Moves = append(game.Moves, col)
	game.UpdatedAt = c.clock.Now()

	winner, over := c.boardService.Outcome(game.Board)
	switch {
	case over && winner.IsPlayer():
		game.State = model.GameStateWon
		game.Winner = winner
	case over:
		game.State = model.GameStateDraw
	default:
		game.NextChecker = checker.Opponent()
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		if err := c.recordSummary(ctx, game); err != nil {
			return nil, err
		}
	}

	return game, nil
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	defer c.lockGame(gameID)()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.IsFinished() {
		return nil // Already finished
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}
	return c.recordSummary(ctx, game)
}

// lockGame holds the stripe lock for gameID until the returned func is called.
// Each load, check and save of a game runs under it.
func (c *Controller) lockGame(gameID model.GameID) func() {
	mu := &c.locks[xxhash.Sum64String(string(gameID))%gameLockStripes]
	mu.Lock()
	return mu.Unlock
}

// ListSummaries returns recently completed games, newest first
func (c *Controller) ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	return c.storage.ListGameSummaries(ctx, limit)
}

// recordSummary stores the summary of a finished game
func (c *Controller) recordSummary(ctx context.Context, game *model.Game) error {
	summary := game.Summary(c.clock.Now())
	if err := c.storage.SaveGameSummary(ctx, summary); err != nil {
		c.logger.Error("failed to save game summary",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("outcome", string(game.State)),
		slog.String("winner", game.Winner.String()),
		slog.Int("moves", len(game.Moves)),
	)
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, opts NewGameOptions) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	PlayMove(ctx context.Context, gameID model.GameID, checker model.Checker, col int) (*model.Game, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
