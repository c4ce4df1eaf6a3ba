package bot

import (
	"fmt"
	"slices"

	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
)

// Column scores. Every legal column scores within [ScoreLoss, ScoreWin];
// ScoreIllegal sits strictly below that range.
const (
	ScoreIllegal = -1.0
	ScoreLoss    = 0.0
	ScoreNeutral = 50.0
	ScoreWin     = 100.0
)

// MaxPly bounds the look-ahead depth accepted from users
const MaxPly = model.MaxPly

// Evaluator scores every column of a board from one checker's point of view
// by simulating moves to a fixed depth. It is a small immutable value; each
// recursion level builds a fresh opposing Evaluator with one less ply.
type Evaluator struct {
	checker  model.Checker
	tiebreak model.TiebreakPolicy
	ply      int
	random   random.Random
}

// NewEvaluator validates its arguments and returns an Evaluator. rnd is only
// consulted by the RANDOM tie-break policy; nil selects crypto randomness.
func NewEvaluator(checker model.Checker, tiebreak model.TiebreakPolicy, ply int, rnd random.Random) (Evaluator, error) {
	if !checker.IsPlayer() {
		return Evaluator{}, model.ErrInvalidChecker
	}
	if !tiebreak.IsValid() {
		return Evaluator{}, fmt.Errorf("%w: %q", model.ErrInvalidTiebreak, tiebreak)
	}
	if ply < 0 {
		return Evaluator{}, fmt.Errorf("%w: %d", model.ErrInvalidPly, ply)
	}
	if rnd == nil {
		rnd = random.New()
	}
	return Evaluator{
		checker:  checker,
		tiebreak: tiebreak,
		ply:      ply,
		random:   rnd,
	}, nil
}

// Checker returns the side this evaluator plays
func (e Evaluator) Checker() model.Checker { return e.checker }

// Ply returns the look-ahead depth
func (e Evaluator) Ply() int { return e.ply }

// Tiebreak returns the tie-break policy
func (e Evaluator) Tiebreak() model.TiebreakPolicy { return e.tiebreak }

func (e Evaluator) opponent() Evaluator {
	return Evaluator{
		checker:  e.checker.Opponent(),
		tiebreak: e.tiebreak,
		ply:      e.ply - 1,
		random:   e.random,
	}
}

// ScoresFor returns a fresh score vector with one entry per column. The
// board is searched in place and is unchanged when ScoresFor returns.
func (e Evaluator) ScoresFor(board *model.Board) []float64 {
	scores := make([]float64, board.Width)
	won := board.CheckWin(e.checker)
	lost := board.CheckWin(e.checker.Opponent())

	for col := 0; col < board.Width; col++ {
		switch {
		case !board.IsLegalMove(col):
			scores[col] = ScoreIllegal
		case won:
			scores[col] = ScoreWin
		case lost:
			scores[col] = ScoreLoss
		default:
			board.WithMove(col, e.checker, func() {
				scores[col] = e.scoreAfterMove(board)
			})
		}
	}
	return scores
}

// scoreAfterMove scores the position just after this evaluator's move
func (e Evaluator) scoreAfterMove(board *model.Board) float64 {
	switch {
	case board.CheckWin(e.checker):
		return ScoreWin
	case len(board.WinningColumns(e.checker.Opponent())) > 0:
		return ScoreLoss
	case board.IsFull():
		return ScoreNeutral
	case e.ply == 0:
		return ScoreNeutral
	}
	// The board is not full, so the reply vector has a legal entry >= ScoreLoss.
	best := slices.Max(e.opponent().ScoresFor(board))
	return ScoreWin - best
}

// TiebreakMove returns the column holding the maximum score. Ties resolve
// per the tie-break policy over the tied indices in ascending order.
func (e Evaluator) TiebreakMove(scores []float64) (int, error) {
	if len(scores) == 0 {
		return -1, model.ErrNoScores
	}

	best := slices.Max(scores)
	var tied []int
	for col, score := range scores {
		if score == best {
			tied = append(tied, col)
		}
	}

	switch e.tiebreak {
	case model.TiebreakLeft:
		return tied[0], nil
	case model.TiebreakRight:
		return tied[len(tied)-1], nil
	default:
		return tied[e.random.Intn(len(tied))], nil
	}
}

// MoveFromScores applies TiebreakMove to a score vector computed for board
func (e Evaluator) MoveFromScores(board *model.Board, scores []float64) (int, error) {
	if len(scores) != board.Width {
		return -1, fmt.Errorf("%w: got %d, want %d", model.ErrScoreWidth, len(scores), board.Width)
	}
	if board.IsFull() {
		return -1, model.ErrBoardFull
	}
	return e.TiebreakMove(scores)
}

// NextMove scores the board and picks a column
func (e Evaluator) NextMove(board *model.Board) (int, error) {
	if board.IsFull() {
		return -1, model.ErrBoardFull
	}
	return e.MoveFromScores(board, e.ScoresFor(board))
}

// Analysis is the score vector for one side of a position with the column
// the evaluator would play
type Analysis struct {
	Checker    model.Checker
	Ply        int
	Tiebreak   model.TiebreakPolicy
	Scores     []float64
	BestColumn int // -1 when the board is full
}

// Analyze scores board for checker and picks the best column
func Analyze(board *model.Board, checker model.Checker, ply int, tiebreak model.TiebreakPolicy, rnd random.Random) (*Analysis, error) {
	if ply > MaxPly {
		return nil, fmt.Errorf("%w: %d exceeds %d", model.ErrInvalidPly, ply, MaxPly)
	}
	if err := model.CheckSearchBudget(board.Width, ply); err != nil {
		return nil, err
	}
	eval, err := NewEvaluator(checker, tiebreak, ply, rnd)
	if err != nil {
		return nil, err
	}

	scores := eval.ScoresFor(board)
	best := -1
	if !board.IsFull() {
		best, err = eval.MoveFromScores(board, scores)
		if err != nil {
			return nil, err
		}
	}

	return &Analysis{
		Checker:    checker,
		Ply:        ply,
		Tiebreak:   tiebreak,
		Scores:     scores,
		BestColumn: best,
	}, nil
}
