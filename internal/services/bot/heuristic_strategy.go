package bot

import "github.com/mcoot/connectfour-go/internal/model"

// HeuristicStrategy plays without look-ahead: win now if possible, else block
// the opponent's immediate win, else take the centre, else the lowest legal column.
type HeuristicStrategy struct{}

// NewHeuristicStrategy creates a new HeuristicStrategy
func NewHeuristicStrategy() *HeuristicStrategy {
	return &HeuristicStrategy{}
}

// ChooseColumn applies the win / block / centre / leftmost rule
func (s *HeuristicStrategy) ChooseColumn(board *model.Board, checker model.Checker) (int, error) {
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return -1, model.ErrBoardFull
	}

	if wins := board.WinningColumns(checker); len(wins) > 0 {
		return wins[0], nil
	}
	if blocks := board.WinningColumns(checker.Opponent()); len(blocks) > 0 {
		return blocks[0], nil
	}
	if centre := board.Width / 2; board.IsLegalMove(centre) {
		return centre, nil
	}
	return legal[0], nil
}
