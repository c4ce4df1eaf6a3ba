package bot

import (
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// RandomStrategy picks a uniformly random legal column
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	if rnd == nil {
		rnd = random.New()
	}
	return &RandomStrategy{random: rnd}
}

// ChooseColumn returns one of the legal columns at random
func (s *RandomStrategy) ChooseColumn(board *model.Board, checker model.Checker) (int, error) {
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return -1, model.ErrBoardFull
	}
	return legal[s.random.Intn(len(legal))], nil
}
