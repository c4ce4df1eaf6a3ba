package board

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(testutil.NopLogger())
}

// CreateBoard tests

func (s *ServiceSuite) TestCreateBoardSucceeds() {
	board, err := s.service.CreateBoard(7, 6)
	s.Require().NoError(err)
	s.Equal(7, board.Width)
	s.Equal(6, board.Height)
	s.Equal(0, board.MoveCount())
}

func (s *ServiceSuite) TestCreateBoardRejectsBadSize() {
	_, err := s.service.CreateBoard(0, 6)
	s.ErrorIs(err, model.ErrInvalidBoardSize)

	_, err = s.service.CreateBoard(7, 11)
	s.ErrorIs(err, model.ErrInvalidBoardSize)
}

// PlaceChecker tests

func (s *ServiceSuite) TestPlaceCheckerSucceeds() {
	board, _ := s.service.CreateBoard(7, 6)

	err := s.service.PlaceChecker(board, 3, model.CheckerX)
	s.Require().NoError(err)
	s.Equal(model.CheckerX, board.Get(5, 3))
}

func (s *ServiceSuite) TestPlaceCheckerOutOfRange() {
	board, _ := s.service.CreateBoard(7, 6)

	s.ErrorIs(s.service.PlaceChecker(board, -1, model.CheckerX), model.ErrInvalidColumn)
	s.ErrorIs(s.service.PlaceChecker(board, 7, model.CheckerX), model.ErrInvalidColumn)
	s.Equal(0, board.MoveCount())
}

func (s *ServiceSuite) TestPlaceCheckerColumnFull() {
	board, _ := s.service.CreateBoard(7, 2)
	s.Require().NoError(s.service.PlaceChecker(board, 0, model.CheckerX))
	s.Require().NoError(s.service.PlaceChecker(board, 0, model.CheckerO))

	err := s.service.PlaceChecker(board, 0, model.CheckerX)
	s.ErrorIs(err, model.ErrColumnFull)
	s.Equal(2, board.MoveCount())
}

func (s *ServiceSuite) TestPlaceCheckerLogsRefusedMove() {
	var buf bytes.Buffer
	service := New(testutil.WriterLogger(&buf))
	board, _ := service.CreateBoard(3, 1)
	s.Require().NoError(service.PlaceChecker(board, 1, model.CheckerX))
	s.Empty(buf.String())

	s.ErrorIs(service.PlaceChecker(board, 1, model.CheckerO), model.ErrColumnFull)
	s.Contains(buf.String(), `"msg":"move refused"`)
	s.Contains(buf.String(), `"component":"board-service"`)
	s.Contains(buf.String(), `"column":1`)
	s.Contains(buf.String(), `"checker":"O"`)
}

func (s *ServiceSuite) TestPlaceCheckerRejectsEmpty() {
	board, _ := s.service.CreateBoard(7, 6)
	s.ErrorIs(s.service.PlaceChecker(board, 0, model.CheckerEmpty), model.ErrInvalidChecker)
}

// Outcome tests

func (s *ServiceSuite) TestOutcomeInProgress() {
	board, _, err := s.service.BoardFromMoves(7, 6, "3344")
	s.Require().NoError(err)

	winner, over := s.service.Outcome(board)
	s.False(over)
	s.Equal(model.CheckerEmpty, winner)
}

func (s *ServiceSuite) TestOutcomeWin() {
	board, _, err := s.service.BoardFromMoves(7, 6, "0102030")
	s.Require().NoError(err)

	winner, over := s.service.Outcome(board)
	s.True(over)
	s.Equal(model.CheckerX, winner)
}

func (s *ServiceSuite) TestOutcomeDraw() {
	board, _, err := s.service.BoardFromMoves(2, 1, "01")
	s.Require().NoError(err)

	winner, over := s.service.Outcome(board)
	s.True(over)
	s.Equal(model.CheckerEmpty, winner)
}

// BoardFromMoves tests

func (s *ServiceSuite) TestBoardFromMovesReturnsNextChecker() {
	_, next, err := s.service.BoardFromMoves(7, 6, "3, 4, 3")
	s.Require().NoError(err)
	s.Equal(model.CheckerO, next)
}

func (s *ServiceSuite) TestBoardFromMovesRejectsIllegal() {
	_, _, err := s.service.BoardFromMoves(7, 6, "38")
	s.ErrorIs(err, model.ErrInvalidColumn)

	_, _, err = s.service.BoardFromMoves(7, 2, "000")
	s.ErrorIs(err, model.ErrColumnFull)

	_, _, err = s.service.BoardFromMoves(7, 6, "3a")
	s.ErrorIs(err, model.ErrInvalidColumn)
}

// Render tests

func (s *ServiceSuite) TestRender() {
	board, _, err := s.service.BoardFromMoves(4, 2, "01")
	s.Require().NoError(err)

	expected := "| | | | |\n" +
		"|X|O| | |\n" +
		"---------\n" +
		" 0 1 2 3 \n"
	s.Equal(expected, Render(board))
}
