package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour
	cfg.SummaryTTL = 2 * time.Hour
	cfg.MaxSummaries = 3

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func summaryAt(id model.GameID, at time.Time) *model.GameSummary {
	return &model.GameSummary{
		ID:          id,
		Outcome:     model.GameStateWon,
		Winner:      model.CheckerO,
		SeatX:       model.HumanSeat("Alice"),
		SeatO:       model.BotSeat("Bot", model.BotStrategyLookahead, 4, model.TiebreakLeft),
		MoveCount:   12,
		CompletedAt: at,
	}
}

// Game tests

func (s *StorageSuite) TestPing() {
	s.NoError(s.storage.Ping(s.ctx))
}

func (s *StorageSuite) TestSaveAndGetGame() {
	board := model.NewBoard(model.DefaultWidth, model.DefaultHeight)
	board.SetBoard("3343")
	game := &model.Game{
		ID:          "game-1",
		State:       model.GameStateInProgress,
		Board:       board,
		SeatX:       model.HumanSeat("Alice"),
		SeatO:       model.BotSeat("Bot", model.BotStrategyLookahead, 3, model.TiebreakRandom),
		NextChecker: model.CheckerX,
		Moves:       []int{3, 3, 4, 3},
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.State, retrieved.State)
	s.Equal(game.Board, retrieved.Board)
	s.Equal(game.SeatO, retrieved.SeatO)
	s.Equal(model.CheckerX, retrieved.NextChecker)
	s.Equal([]int{3, 3, 4, 3}, retrieved.Moves)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", Board: model.NewBoard(7, 6)})

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameTTL() {
	game := &model.Game{ID: "game-1", State: model.GameStateInProgress, Board: model.NewBoard(7, 6)}
	_ = s.storage.SaveGame(s.ctx, game)

	ttl := s.mini.TTL(gameKey(game.ID))
	s.True(ttl > 0, "Game should have TTL")
}

// Summary tests

func (s *StorageSuite) TestListGameSummariesNewestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveGameSummary(s.ctx, summaryAt("g1", base)))
	s.Require().NoError(s.storage.SaveGameSummary(s.ctx, summaryAt("g2", base.Add(time.Minute))))

	summaries, err := s.storage.ListGameSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(model.GameID("g2"), summaries[0].ID)
	s.Equal(model.CheckerO, summaries[0].Winner)
	s.Equal(12, summaries[0].MoveCount)
	s.Equal(model.GameID("g1"), summaries[1].ID)
}

func (s *StorageSuite) TestListGameSummariesLimit() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGameSummary(s.ctx, summaryAt("g1", base))
	_ = s.storage.SaveGameSummary(s.ctx, summaryAt("g2", base.Add(time.Minute)))

	summaries, err := s.storage.ListGameSummaries(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(model.GameID("g2"), summaries[0].ID)
}

func (s *StorageSuite) TestSummaryIndexIsCapped() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []model.GameID{"g1", "g2", "g3", "g4", "g5"} {
		_ = s.storage.SaveGameSummary(s.ctx, summaryAt(id, base.Add(time.Duration(i)*time.Minute)))
	}

	summaries, err := s.storage.ListGameSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 3)
	s.Equal(model.GameID("g5"), summaries[0].ID)
	s.Equal(model.GameID("g3"), summaries[2].ID)
}

func (s *StorageSuite) TestExpiredSummariesAreSkipped() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGameSummary(s.ctx, summaryAt("g1", base))
	s.mini.FastForward(3 * time.Hour)
	_ = s.storage.SaveGameSummary(s.ctx, summaryAt("g2", base.Add(time.Minute)))

	summaries, err := s.storage.ListGameSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(model.GameID("g2"), summaries[0].ID)

	members, err := s.mini.ZMembers(summaryIndexKey())
	s.Require().NoError(err)
	s.Equal([]string{"g2"}, members)
}

func (s *StorageSuite) TestListGameSummariesEmpty() {
	summaries, err := s.storage.ListGameSummaries(s.ctx, 5)
	s.Require().NoError(err)
	s.Empty(summaries)
}
