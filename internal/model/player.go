package model

import (
	"fmt"
	"slices"
)

// Seat describes who plays one side of a game
type Seat struct {
	Name     string
	IsBot    bool
	Strategy string         // Bot strategy name, empty for humans
	Ply      int            // Look-ahead depth for the lookahead strategy
	Tiebreak TiebreakPolicy // Tie-break policy for the lookahead strategy
}

// HumanSeat returns a seat for a human player
func HumanSeat(name string) Seat {
	return Seat{Name: name}
}

// BotSeat returns a seat for a bot using the given strategy
func BotSeat(name, strategy string, ply int, tiebreak TiebreakPolicy) Seat {
	return Seat{
		Name:     name,
		IsBot:    true,
		Strategy: strategy,
		Ply:      ply,
		Tiebreak: tiebreak,
	}
}

// Validate checks a bot seat's strategy settings. Human seats are always valid.
func (s Seat) Validate() error {
	if !s.IsBot {
		return nil
	}
	if !slices.Contains(ValidBotStrategies(), s.Strategy) {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, s.Strategy)
	}
	if s.Strategy != BotStrategyLookahead {
		return nil
	}
	if s.Ply < 0 || s.Ply > MaxPly {
		return fmt.Errorf("%w: %d", ErrInvalidPly, s.Ply)
	}
	if !s.Tiebreak.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTiebreak, s.Tiebreak)
	}
	return nil
}

// ValidateFor checks the seat and that its look-ahead fits the search budget
// for a board with width columns
func (s Seat) ValidateFor(width int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsBot && s.Strategy == BotStrategyLookahead {
		return CheckSearchBudget(width, s.Ply)
	}
	return nil
}
