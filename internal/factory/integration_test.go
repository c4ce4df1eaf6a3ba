package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/game"
	"github.com/mcoot/connectfour-go/internal/services/match"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.Require().NoError(s.app.Close())
}

// Test: Human vs bot game from creation to completion
func (s *IntegrationSuite) TestHumanVsBotGameFlow() {
	s.app.MockRandom.QueueString("GAME01")

	// Step 1: Create a game with a heuristic bot as O
	g, err := s.app.GameController.CreateGame(s.ctx, game.NewGameOptions{
		SeatX: model.HumanSeat("Alice"),
		SeatO: model.BotSeat("Bot", model.BotStrategyHeuristic, 0, ""),
	})
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), g.ID)

	// Step 2: Alternate human moves in column 0 with bot replies. The bot
	// takes the centre, then must block column 0 once X has three.
	for _, col := range []int{0, 0, 0} {
		_, err := s.app.GameController.PlayMove(s.ctx, g.ID, model.CheckerX, col)
		s.Require().NoError(err)

		moves, err := s.app.BotService.ProcessBotMoves(s.ctx, g.ID)
		s.Require().NoError(err)
		s.Require().Len(moves, 1)
		s.Equal(model.CheckerO, moves[0].Checker)
	}

	current, err := s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal([]int{0, 3, 0, 3, 0, 0}, current.Moves)
	s.Equal(model.GameStateInProgress, current.State)

	// Step 3: The human abandons; the summary is recorded
	s.Require().NoError(s.app.GameController.AbandonGame(s.ctx, g.ID))
	summaries, err := s.app.GameController.ListSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(model.GameStateAbandoned, summaries[0].Outcome)
}

// Test: Bot vs bot game played entirely by the bot service
func (s *IntegrationSuite) TestBotVsBotGameFlow() {
	s.app.MockRandom.QueueString("GAME02")

	g, err := s.app.GameController.CreateGame(s.ctx, game.NewGameOptions{
		SeatX: model.BotSeat("Deep", model.BotStrategyLookahead, 3, model.TiebreakLeft),
		SeatO: model.BotSeat("Flat", model.BotStrategyHeuristic, 0, ""),
	})
	s.Require().NoError(err)

	moves, err := s.app.BotService.ProcessBotMoves(s.ctx, g.ID)
	s.Require().NoError(err)
	s.NotEmpty(moves)

	final, err := s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.True(final.IsFinished())

	winner, over := s.app.BoardService.Outcome(final.Board)
	s.True(over)
	s.Equal(final.Winner, winner)
}

// Test: Match runner wired through the factory
func (s *IntegrationSuite) TestMatchRunner() {
	result, err := s.app.MatchRunner.Run(s.ctx, match.Config{
		Games: 2,
		SeatX: model.BotSeat("X", model.BotStrategyHeuristic, 0, ""),
		SeatO: model.BotSeat("O", model.BotStrategyHeuristic, 0, ""),
	})
	s.Require().NoError(err)
	s.Equal(2, result.XWins+result.OWins+result.Draws)
}

// Test: Analysis of a live game
func (s *IntegrationSuite) TestAnalyzeLiveGame() {
	s.app.MockRandom.QueueString("GAME03")
	g, err := s.app.GameController.CreateGame(s.ctx, game.NewGameOptions{})
	s.Require().NoError(err)

	analysis, err := s.app.BotService.Analyze(s.ctx, g.ID, 2, model.TiebreakLeft)
	s.Require().NoError(err)
	s.Equal(model.CheckerX, analysis.Checker)
	s.Len(analysis.Scores, model.DefaultWidth)
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewMemoryWithSeed() {
	app, err := New(Config{Seed: 42})
	s.Require().NoError(err)
	defer app.Close()

	s.NotNil(app.GameController)
	s.NotNil(app.BotService)
}

func (s *IntegrationSuite) TestSeedDrivesBotsButNotGameIDs() {
	first, err := New(Config{Seed: 42})
	s.Require().NoError(err)
	defer first.Close()
	second, err := New(Config{Seed: 42})
	s.Require().NoError(err)
	defer second.Close()

	// Restarting with the same seed must not reissue stored game IDs
	g1, err := first.GameController.CreateGame(s.ctx, game.NewGameOptions{})
	s.Require().NoError(err)
	g2, err := second.GameController.CreateGame(s.ctx, game.NewGameOptions{})
	s.Require().NoError(err)
	s.NotEqual(g1.ID, g2.ID)

	cfg := match.Config{
		Games: 3,
		SeatX: model.BotSeat("X", model.BotStrategyRandom, 0, ""),
		SeatO: model.BotSeat("O", model.BotStrategyRandom, 0, ""),
	}
	r1, err := first.MatchRunner.Run(s.ctx, cfg)
	s.Require().NoError(err)
	r2, err := second.MatchRunner.Run(s.ctx, cfg)
	s.Require().NoError(err)
	s.Equal(r1.Games, r2.Games)
}
