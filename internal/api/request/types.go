package request

import (
	"fmt"

	"github.com/mcoot/connectfour-go/internal/model"
)

// Seat describes one side of a new game
type Seat struct {
	Name     string `json:"name,omitempty"`
	Bot      bool   `json:"bot,omitempty"`
	Strategy string `json:"strategy,omitempty"`
	Ply      int    `json:"ply,omitempty"`
	Tiebreak string `json:"tiebreak,omitempty"`
}

// ToModel converts the request seat. A lookahead bot without a tiebreak
// breaks ties to the left.
func (s Seat) ToModel() (model.Seat, error) {
	if !s.Bot {
		return model.HumanSeat(s.Name), nil
	}

	strategy := s.Strategy
	if strategy == "" {
		strategy = model.BotStrategyLookahead
	}

	tiebreak := model.TiebreakLeft
	if s.Tiebreak != "" {
		parsed, err := model.ParseTiebreakPolicy(s.Tiebreak)
		if err != nil {
			return model.Seat{}, err
		}
		tiebreak = parsed
	}
	if strategy != model.BotStrategyLookahead {
		tiebreak = ""
	}

	return model.BotSeat(s.Name, strategy, s.Ply, tiebreak), nil
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Width  int  `json:"width,omitempty"`
	Height int  `json:"height,omitempty"`
	SeatX  Seat `json:"seat_x"`
	SeatO  Seat `json:"seat_o"`
}

// MoveRequest is the request body for playing a move. Checker may be
// omitted to play for the side to move.
type MoveRequest struct {
	Checker string `json:"checker,omitempty"`
	Column  *int   `json:"column"`
}

// LiveMessage is a message sent by a live play client
type LiveMessage struct {
	Type    string `json:"type"`
	Checker string `json:"checker,omitempty"`
	Column  *int   `json:"column,omitempty"`
}

// ParseOptionalChecker parses a checker name, returning CheckerEmpty for ""
func ParseOptionalChecker(s string) (model.Checker, error) {
	if s == "" {
		return model.CheckerEmpty, nil
	}
	c, err := model.ParseChecker(s)
	if err != nil {
		return model.CheckerEmpty, fmt.Errorf("checker: %w", err)
	}
	return c, nil
}
