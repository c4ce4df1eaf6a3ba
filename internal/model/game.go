package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Waiting for NextChecker to move
	GameStateWon        GameState = "won"         // Winner holds four in a row
	GameStateDraw       GameState = "draw"        // Board filled with no winner
	GameStateAbandoned  GameState = "abandoned"   // Game was cancelled
)

// Game represents a single Connect-Four match between two seats
type Game struct {
	ID    GameID
	State GameState
	Board *Board

	SeatX Seat
	SeatO Seat

	NextChecker Checker // Side to move while in progress
	Winner      Checker // CheckerEmpty unless State is won
	Moves       []int   // Columns played, in order

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Seat returns the seat playing the given checker
func (g *Game) Seat(checker Checker) Seat {
	if checker == CheckerO {
		return g.SeatO
	}
	return g.SeatX
}

// IsFinished returns true once the game is won, drawn or abandoned
func (g *Game) IsFinished() bool {
	return g.State != GameStateInProgress
}

// BotToMove returns true if the game is in progress and a bot holds the move
func (g *Game) BotToMove() bool {
	return g.State == GameStateInProgress && g.Seat(g.NextChecker).IsBot
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	Outcome     GameState
	Winner      Checker // CheckerEmpty for a draw or abandonment
	SeatX       Seat
	SeatO       Seat
	MoveCount   int
	CompletedAt time.Time
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	clone := *g
	if g.Board != nil {
		clone.Board = g.Board.Clone()
	}
	clone.Moves = append([]int(nil), g.Moves...)
	return &clone
}

// Summary builds the summary record for a finished game
func (g *Game) Summary(completedAt time.Time) *GameSummary {
	return &GameSummary{
		ID:          g.ID,
		Outcome:     g.State,
		Winner:      g.Winner,
		SeatX:       g.SeatX,
		SeatO:       g.SeatO,
		MoveCount:   len(g.Moves),
		CompletedAt: completedAt,
	}
}
