package response

import (
	"time"

	"github.com/mcoot/connectfour-go/internal/live"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/bot"
)

// Game is the API shape of a game. It matches the snapshot sent to live
// clients.
type Game = live.GameView

// Seat is the API shape of a seat
type Seat = live.SeatView

// GameFromModel converts model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	return *live.NewGameView(g)
}

// BotMove describes a move made by a bot seat
type BotMove struct {
	Checker  string `json:"checker"`
	Column   int    `json:"column"`
	Strategy string `json:"strategy"`
}

// BotMovesFromModel converts the moves reported by the bot service
func BotMovesFromModel(moves []bot.BotMove) []BotMove {
	out := make([]BotMove, len(moves))
	for i, m := range moves {
		out[i] = BotMove{
			Checker:  m.Checker.String(),
			Column:   m.Column,
			Strategy: m.Strategy,
		}
	}
	return out
}

// MoveResponse is the response after playing a move. BotMoves lists the
// replies made by bot seats before control returned to a human.
type MoveResponse struct {
	Game     Game      `json:"game"`
	BotMoves []BotMove `json:"bot_moves"`
}

// CreateGameResponse is the response after creating a game
type CreateGameResponse = MoveResponse

// Scores is the score vector for the side to move
type Scores struct {
	Checker    string    `json:"checker"`
	Ply        int       `json:"ply"`
	Tiebreak   string    `json:"tiebreak"`
	Scores     []float64 `json:"scores"`
	BestColumn int       `json:"best_column"`
}

// ScoresFromAnalysis converts a bot.Analysis
func ScoresFromAnalysis(a *bot.Analysis) Scores {
	return Scores{
		Checker:    a.Checker.String(),
		Ply:        a.Ply,
		Tiebreak:   string(a.Tiebreak),
		Scores:     a.Scores,
		BestColumn: a.BestColumn,
	}
}

// GameSummary represents a completed game summary
type GameSummary struct {
	ID          string    `json:"id"`
	Outcome     string    `json:"outcome"`
	Winner      *string   `json:"winner"`
	SeatX       Seat      `json:"seat_x"`
	SeatO       Seat      `json:"seat_o"`
	MoveCount   int       `json:"move_count"`
	CompletedAt time.Time `json:"completed_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(s *model.GameSummary) GameSummary {
	var winner *string
	if s.Winner.IsPlayer() {
		w := s.Winner.String()
		winner = &w
	}
	return GameSummary{
		ID:          string(s.ID),
		Outcome:     string(s.Outcome),
		Winner:      winner,
		SeatX:       live.NewSeatView(s.SeatX),
		SeatO:       live.NewSeatView(s.SeatO),
		MoveCount:   s.MoveCount,
		CompletedAt: s.CompletedAt,
	}
}

// Summaries is the list of recently completed games
type Summaries struct {
	Games []GameSummary `json:"games"`
}
