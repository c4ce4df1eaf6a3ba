package bot

import (
	"fmt"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// Strategy defines how a bot chooses a column
type Strategy interface {
	// ChooseColumn selects a legal column for checker. The board is left as it was.
	ChooseColumn(board *model.Board, checker model.Checker) (int, error)
}

// NewStrategy builds the named strategy. ply and tiebreak only apply to the
// lookahead strategy.
func NewStrategy(name string, ply int, tiebreak model.TiebreakPolicy, rnd random.Random) (Strategy, error) {
	switch name {
	case model.BotStrategyLookahead:
		return NewLookaheadStrategy(ply, tiebreak, rnd)
	case model.BotStrategyHeuristic:
		return NewHeuristicStrategy(), nil
	case model.BotStrategyRandom:
		return NewRandomStrategy(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
}

// StrategyForSeat builds the strategy configured on a bot seat
func StrategyForSeat(seat model.Seat, rnd random.Random) (Strategy, error) {
	return NewStrategy(seat.Strategy, seat.Ply, seat.Tiebreak, rnd)
}

// LookaheadStrategy plays the column chosen by an Evaluator
type LookaheadStrategy struct {
	ply      int
	tiebreak model.TiebreakPolicy
	random   random.Random
}

// NewLookaheadStrategy creates a LookaheadStrategy searching ply moves ahead
func NewLookaheadStrategy(ply int, tiebreak model.TiebreakPolicy, rnd random.Random) (*LookaheadStrategy, error) {
	if ply < 0 || ply > MaxPly {
		return nil, fmt.Errorf("%w: %d", model.ErrInvalidPly, ply)
	}
	if !tiebreak.IsValid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidTiebreak, tiebreak)
	}
	return &LookaheadStrategy{ply: ply, tiebreak: tiebreak, random: rnd}, nil
}

// ChooseColumn runs the evaluator for checker
func (s *LookaheadStrategy) ChooseColumn(board *model.Board, checker model.Checker) (int, error) {
	eval, err := NewEvaluator(checker, s.tiebreak, s.ply, s.random)
	if err != nil {
		return -1, err
	}
	return eval.NextMove(board)
}
