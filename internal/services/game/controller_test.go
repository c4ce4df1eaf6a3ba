package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mcoot/connectfour-go/internal/dependencies/mocks"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
	"github.com/mcoot/connectfour-go/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ControllerSuite struct {
	suite.Suite
	storage      *memory.Storage
	boardService *board.Service
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	controller   *Controller
	ctx          context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.boardService = board.New(testutil.NopLogger())
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.boardService, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) createHumanGame() *model.Game {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, NewGameOptions{
		SeatX: model.HumanSeat("Alice"),
		SeatO: model.HumanSeat("Bob"),
	})
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) playMoves(gameID model.GameID, cols ...int) *model.Game {
	var game *model.Game
	for _, col := range cols {
		current, err := s.controller.GetGame(s.ctx, gameID)
		s.Require().NoError(err)
		game, err = s.controller.PlayMove(s.ctx, gameID, current.NextChecker, col)
		s.Require().NoError(err)
	}
	return game
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	game := s.createHumanGame()

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(model.GameStateInProgress, game.State)
	s.Equal(model.DefaultWidth, game.Board.Width)
	s.Equal(model.DefaultHeight, game.Board.Height)
	s.Equal(model.CheckerX, game.NextChecker)
	s.Equal("Alice", game.SeatX.Name)
	s.Empty(game.Moves)
}

func (s *ControllerSuite) TestCreateGameIsPersisted() {
	game := s.createHumanGame()

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
}

func (s *ControllerSuite) TestCreateGameDefaultsSeatNames() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, NewGameOptions{})
	s.Require().NoError(err)

	s.Equal("Player X", game.SeatX.Name)
	s.Equal("Player O", game.SeatO.Name)
}

func (s *ControllerSuite) TestCreateGameCustomSize() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, NewGameOptions{Width: 5, Height: 4})
	s.Require().NoError(err)

	s.Equal(5, game.Board.Width)
	s.Equal(4, game.Board.Height)
}

func (s *ControllerSuite) TestCreateGameInvalidSize() {
	_, err := s.controller.CreateGame(s.ctx, NewGameOptions{Width: 12})
	s.ErrorIs(err, model.ErrInvalidBoardSize)
}

func (s *ControllerSuite) TestCreateGameInvalidBotSeat() {
	_, err := s.controller.CreateGame(s.ctx, NewGameOptions{
		SeatO: model.BotSeat("Bot", "clairvoyant", 0, model.TiebreakLeft),
	})
	s.ErrorIs(err, model.ErrUnknownStrategy)

	_, err = s.controller.CreateGame(s.ctx, NewGameOptions{
		SeatO: model.BotSeat("Bot", model.BotStrategyLookahead, model.MaxPly+1, model.TiebreakLeft),
	})
	s.ErrorIs(err, model.ErrInvalidPly)

	_, err = s.controller.CreateGame(s.ctx, NewGameOptions{
		SeatX: model.BotSeat("Bot", model.BotStrategyLookahead, 2, "SIDEWAYS"),
	})
	s.ErrorIs(err, model.ErrInvalidTiebreak)
}

// PlayMove tests

func (s *ControllerSuite) TestPlayMoveAlternatesTurns() {
	game := s.createHumanGame()

	updated, err := s.controller.PlayMove(s.ctx, game.ID, model.CheckerX, 3)
	s.Require().NoError(err)

	s.Equal(model.CheckerO, updated.NextChecker)
	s.Equal([]int{3}, updated.Moves)
	s.Equal(model.CheckerX, updated.Board.Get(5, 3))
}

func (s *ControllerSuite) TestPlayMoveWrongTurn() {
	game := s.createHumanGame()

	_, err := s.controller.PlayMove(s.ctx, game.ID, model.CheckerO, 3)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestPlayMoveInvalidColumn() {
	game := s.createHumanGame()

	_, err := s.controller.PlayMove(s.ctx, game.ID, model.CheckerX, 7)
	s.ErrorIs(err, model.ErrInvalidColumn)

	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal(model.CheckerX, retrieved.NextChecker)
	s.Empty(retrieved.Moves)
}

func (s *ControllerSuite) TestPlayMoveColumnFull() {
	game := s.createHumanGame()
	s.playMoves(game.ID, 0, 0, 0, 0, 0, 0)

	_, err := s.controller.PlayMove(s.ctx, game.ID, model.CheckerX, 0)
	s.ErrorIs(err, model.ErrColumnFull)
}

func (s *ControllerSuite) TestPlayMoveGameNotFound() {
	_, err := s.controller.PlayMove(s.ctx, "missing", model.CheckerX, 0)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestPlayMoveDetectsWin() {
	game := s.createHumanGame()

	final := s.playMoves(game.ID, 0, 1, 0, 1, 0, 1, 0)

	s.Equal(model.GameStateWon, final.State)
	s.Equal(model.CheckerX, final.Winner)
	s.True(final.IsFinished())
}

func (s *ControllerSuite) TestPlayMoveDetectsDraw() {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, NewGameOptions{Width: 2, Height: 2})
	s.Require().NoError(err)

	final := s.playMoves(game.ID, 0, 1, 0, 1)

	s.Equal(model.GameStateDraw, final.State)
	s.Equal(model.CheckerEmpty, final.Winner)
}

func (s *ControllerSuite) TestConcurrentMovesForSameTurn() {
	game := s.createHumanGame()

	const players = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		refused  int
	)
	for col := 0; col < players; col++ {
		col := col
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.controller.PlayMove(s.ctx, game.ID, model.CheckerX, col%model.DefaultWidth)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
			} else if s.ErrorIs(err, model.ErrNotPlayerTurn) {
				refused++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, accepted)
	s.Equal(players-1, refused)

	final, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(final.Moves, 1)
	s.Equal(model.CheckerO, final.NextChecker)
}

func (s *ControllerSuite) TestPlayMoveAfterGameComplete() {
	game := s.createHumanGame()
	s.playMoves(game.ID, 0, 1, 0, 1, 0, 1, 0)

	_, err := s.controller.PlayMove(s.ctx, game.ID, model.CheckerO, 2)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *ControllerSuite) TestCompletedGameRecordsSummary() {
	game := s.createHumanGame()
	s.clock.Advance(5 * time.Minute)
	s.playMoves(game.ID, 0, 1, 0, 1, 0, 1, 0)

	summaries, err := s.controller.ListSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(game.ID, summaries[0].ID)
	s.Equal(model.GameStateWon, summaries[0].Outcome)
	s.Equal(model.CheckerX, summaries[0].Winner)
	s.Equal(7, summaries[0].MoveCount)
	s.Equal(s.clock.Now(), summaries[0].CompletedAt)
}

// AbandonGame tests

func (s *ControllerSuite) TestAbandonGame() {
	game := s.createHumanGame()

	err := s.controller.AbandonGame(s.ctx, game.ID)
	s.Require().NoError(err)

	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal(model.GameStateAbandoned, retrieved.State)

	_, err = s.controller.PlayMove(s.ctx, game.ID, model.CheckerX, 0)
	s.ErrorIs(err, model.ErrGameAbandoned)

	summaries, _ := s.controller.ListSummaries(s.ctx, 0)
	s.Require().Len(summaries, 1)
	s.Equal(model.GameStateAbandoned, summaries[0].Outcome)
}

func (s *ControllerSuite) TestAbandonFinishedGameIsNoop() {
	game := s.createHumanGame()
	s.playMoves(game.ID, 0, 1, 0, 1, 0, 1, 0)

	err := s.controller.AbandonGame(s.ctx, game.ID)
	s.Require().NoError(err)

	retrieved, _ := s.controller.GetGame(s.ctx, game.ID)
	s.Equal(model.GameStateWon, retrieved.State)
}

func (s *ControllerSuite) TestAbandonGameNotFound() {
	err := s.controller.AbandonGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}
