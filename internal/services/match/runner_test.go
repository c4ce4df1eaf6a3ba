package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/dependencies/mocks"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/testutil"
)

type RunnerSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	runner     *Runner
	ctx        context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.runner = NewRunner(board.New(testutil.NopLogger()), s.mockRandom, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *RunnerSuite) TestRunTalliesEveryGame() {
	result, err := s.runner.Run(s.ctx, Config{
		Games: 4,
		SeatX: model.BotSeat("X", model.BotStrategyHeuristic, 0, ""),
		SeatO: model.BotSeat("O", model.BotStrategyLookahead, 1, model.TiebreakLeft),
	})
	s.Require().NoError(err)

	s.Equal(4, result.XWins+result.OWins+result.Draws)
	s.Len(result.Games, 4)
	// Both strategies are deterministic, so every game is identical
	for _, g := range result.Games[1:] {
		s.Equal(result.Games[0], g)
	}
}

func (s *RunnerSuite) TestRunStopsAtFirstWin() {
	// An empty mock queue makes Intn return 0
	result, err := s.runner.Run(s.ctx, Config{
		Games:  1,
		Width:  4,
		Height: 4,
		SeatX:  model.BotSeat("X", model.BotStrategyRandom, 0, ""),
		SeatO:  model.BotSeat("O", model.BotStrategyRandom, 0, ""),
	})
	s.Require().NoError(err)
	s.Require().Len(result.Games, 1)

	// Both bots always take the leftmost legal column
	game := result.Games[0]
	s.Equal([]int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3}, game.Moves)
	s.Equal(model.CheckerX, game.Winner)
	s.Equal(1, result.XWins)
}

func (s *RunnerSuite) TestRunWithSeededRandomIsReproducible() {
	cfg := Config{
		Games: 3,
		SeatX: model.BotSeat("X", model.BotStrategyRandom, 0, ""),
		SeatO: model.BotSeat("O", model.BotStrategyLookahead, 1, model.TiebreakRandom),
	}

	first, err := NewRunner(board.New(testutil.NopLogger()), random.NewSeeded(7), testutil.NopLogger()).Run(s.ctx, cfg)
	s.Require().NoError(err)
	second, err := NewRunner(board.New(testutil.NopLogger()), random.NewSeeded(7), testutil.NopLogger()).Run(s.ctx, cfg)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *RunnerSuite) TestRunRejectsBadConfig() {
	_, err := s.runner.Run(s.ctx, Config{Games: 0})
	s.Error(err)

	_, err = s.runner.Run(s.ctx, Config{
		Games: 1,
		SeatX: model.HumanSeat("Alice"),
		SeatO: model.BotSeat("O", model.BotStrategyRandom, 0, ""),
	})
	s.ErrorIs(err, model.ErrNotBot)

	_, err = s.runner.Run(s.ctx, Config{
		Games: 1,
		SeatX: model.BotSeat("X", "psychic", 0, ""),
		SeatO: model.BotSeat("O", model.BotStrategyRandom, 0, ""),
	})
	s.ErrorIs(err, model.ErrUnknownStrategy)

	_, err = s.runner.Run(s.ctx, Config{
		Games: 1,
		Width: 10,
		SeatX: model.BotSeat("X", model.BotStrategyLookahead, 6, model.TiebreakLeft),
		SeatO: model.BotSeat("O", model.BotStrategyRandom, 0, ""),
	})
	s.ErrorIs(err, model.ErrInvalidPly)
}

func (s *RunnerSuite) TestRunStopsOnCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.runner.Run(ctx, Config{
		Games: 2,
		SeatX: model.BotSeat("X", model.BotStrategyRandom, 0, ""),
		SeatO: model.BotSeat("O", model.BotStrategyRandom, 0, ""),
	})
	s.ErrorIs(err, context.Canceled)
}
