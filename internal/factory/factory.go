package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/live"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/services/bot"
	"github.com/mcoot/connectfour-go/internal/services/game"
	"github.com/mcoot/connectfour-go/internal/services/match"
	"github.com/mcoot/connectfour-go/internal/storage"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
	redisstorage "github.com/mcoot/connectfour-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random // Bot randomness; seeded when Config.Seed is set

	// Services
	BoardService   *board.Service
	GameController *game.Controller
	BotService     *bot.Service
	MatchRunner    *match.Runner
	HubManager     *live.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes bot randomness reproducible when non-zero
	Seed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies. Game IDs always use crypto randomness
	// so a seeded server never reissues IDs already in storage.
	clk := clock.New()
	ids := random.New()
	var rnd random.Random = ids
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	return newWithDependencies(store, clk, ids, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for
// testing). ids generates game IDs; rnd drives the bots.
func newWithDependencies(store storage.Storage, clk clock.Clock, ids, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	boardService := board.New(logger)
	gameController := game.NewController(store, boardService, clk, ids, logger)
	botService := bot.NewService(gameController, rnd, logger)
	matchRunner := match.NewRunner(boardService, rnd, logger)
	hubManager := live.NewHubManager(logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		GameController: gameController,
		BotService:     botService,
		MatchRunner:    matchRunner,
		HubManager:     hubManager,
	}
}

// Close releases resources held by the App
func (a *App) Close() error {
	a.HubManager.Close()
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
