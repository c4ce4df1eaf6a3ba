package model

import (
	"fmt"
	"strings"
)

// Bot strategy constants
const (
	BotStrategyLookahead = "lookahead"
	BotStrategyHeuristic = "heuristic"
	BotStrategyRandom    = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyLookahead:
		return "Look-ahead"
	case BotStrategyHeuristic:
		return "Heuristic"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyLookahead, BotStrategyHeuristic, BotStrategyRandom}
}

// TiebreakPolicy selects among equally scored columns
type TiebreakPolicy string

const (
	TiebreakLeft   TiebreakPolicy = "LEFT"
	TiebreakRight  TiebreakPolicy = "RIGHT"
	TiebreakRandom TiebreakPolicy = "RANDOM"
)

// ParseTiebreakPolicy accepts LEFT, RIGHT or RANDOM in any case
func ParseTiebreakPolicy(s string) (TiebreakPolicy, error) {
	p := TiebreakPolicy(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidTiebreak
	}
	return p, nil
}

// IsValid returns true for the three known policies
func (p TiebreakPolicy) IsValid() bool {
	switch p {
	case TiebreakLeft, TiebreakRight, TiebreakRandom:
		return true
	default:
		return false
	}
}

// MaxPly bounds the look-ahead depth a bot seat may request. Search work
// grows as width^ply, so CheckSearchBudget also applies.
const MaxPly = 8

// MaxSearchLeaves caps width^ply, the number of positions a look-ahead
// search reaches at its deepest level
const MaxSearchLeaves = 20000

// CheckSearchBudget returns ErrInvalidPly when a ply-deep search on a board
// with width columns would exceed MaxSearchLeaves
func CheckSearchBudget(width, ply int) error {
	leaves := 1
	for i := 0; i < ply; i++ {
		leaves *= width
		if leaves > MaxSearchLeaves {
			return fmt.Errorf("%w: ply %d is too deep for %d columns", ErrInvalidPly, ply, width)
		}
	}
	return nil
}
