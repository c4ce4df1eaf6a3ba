package board

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/connectfour-go/internal/model"
)

const (
	// MinSize is the smallest accepted board dimension
	MinSize = 1
	// MaxSize is the largest accepted board dimension. Columns are addressed
	// by single digits in move strings.
	MaxSize = 10
)

// Service provides checked board operations on top of the no-op primitives
// in model.Board
type Service struct {
	logger *slog.Logger
}

// New creates a new board Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// CreateBoard returns an empty board after validating its dimensions
func (s *Service) CreateBoard(width, height int) (*model.Board, error) {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", model.ErrInvalidBoardSize, width, height)
	}
	return model.NewBoard(width, height), nil
}

// ValidateMove checks that col is on the board and not full
func (s *Service) ValidateMove(board *model.Board, col int) error {
	if col < 0 || col >= board.Width {
		return fmt.Errorf("%w: %d", model.ErrInvalidColumn, col)
	}
	if !board.IsLegalMove(col) {
		return fmt.Errorf("%w: %d", model.ErrColumnFull, col)
	}
	return nil
}

// PlaceChecker drops checker into col, reporting why the move was refused
func (s *Service) PlaceChecker(board *model.Board, col int, checker model.Checker) error {
	if !checker.IsPlayer() {
		return model.ErrInvalidChecker
	}
	if err := s.ValidateMove(board, col); err != nil {
		s.logger.Debug("move refused",
			slog.Int("column", col),
			slog.String("checker", checker.String()),
			slog.String("error", err.Error()),
		)
		return err
	}
	board.ApplyMove(col, checker)
	return nil
}

// Outcome reports the winner, if any, and whether the game on board is over
func (s *Service) Outcome(board *model.Board) (winner model.Checker, over bool) {
	switch {
	case board.CheckWin(model.CheckerX):
		return model.CheckerX, true
	case board.CheckWin(model.CheckerO):
		return model.CheckerO, true
	case board.IsFull():
		return model.CheckerEmpty, true
	default:
		return model.CheckerEmpty, false
	}
}

// BoardFromMoves builds a board by replaying a move string. Unlike
// Board.SetBoard, illegal columns are reported instead of skipped.
func (s *Service) BoardFromMoves(width, height int, moves string) (*model.Board, model.Checker, error) {
	board, err := s.CreateBoard(width, height)
	if err != nil {
		return nil, model.CheckerEmpty, err
	}

	next := model.CheckerX
	for i, ch := range moves {
		if ch == ' ' || ch == ',' {
			continue
		}
		if ch < '0' || ch > '9' {
			return nil, model.CheckerEmpty, fmt.Errorf("%w: %q at position %d", model.ErrInvalidColumn, ch, i)
		}
		if err := s.PlaceChecker(board, int(ch-'0'), next); err != nil {
			return nil, model.CheckerEmpty, fmt.Errorf("move %d: %w", i, err)
		}
		next = next.Opponent()
	}
	return board, next, nil
}

// Render draws the board as rows top to bottom between '|' borders, followed
// by a dash line and the column indices
func Render(board *model.Board) string {
	var sb strings.Builder
	for row := 0; row < board.Height; row++ {
		sb.WriteByte('|')
		for col := 0; col < board.Width; col++ {
			sb.WriteString(board.Get(row, col).String())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("-", 2*board.Width+1))
	sb.WriteByte('\n')
	sb.WriteByte(' ')
	for col := 0; col < board.Width; col++ {
		fmt.Fprintf(&sb, "%d ", col%10)
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateBoard(width, height int) (*model.Board, error)
	ValidateMove(board *model.Board, col int) error
	PlaceChecker(board *model.Board, col int, checker model.Checker) error
	Outcome(board *model.Board) (model.Checker, bool)
	BoardFromMoves(width, height int, moves string) (*model.Board, model.Checker, error)
}

var _ ServiceInterface = (*Service)(nil)
