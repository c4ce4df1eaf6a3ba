package storage

import (
	"context"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Storage defines the interface for live game data
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Summary operations. ListGameSummaries returns the newest first; a
	// non-positive limit returns every stored summary.
	SaveGameSummary(ctx context.Context, summary *model.GameSummary) error
	ListGameSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error)
}
