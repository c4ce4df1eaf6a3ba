package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidChecker   = errors.New("invalid checker")
	ErrInvalidColumn    = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrBoardFull        = errors.New("board is full")
	ErrInvalidBoardSize = errors.New("invalid board size")

	// Evaluator errors
	ErrNoScores        = errors.New("score vector is empty")
	ErrScoreWidth      = errors.New("score vector does not match board width")
	ErrInvalidPly      = errors.New("ply must be between 0 and the configured maximum")
	ErrInvalidTiebreak = errors.New("invalid tiebreak policy")
	ErrUnknownStrategy = errors.New("unknown bot strategy")

	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrNotPlayerTurn = errors.New("not this player's turn")
	ErrNotBot        = errors.New("seat is not a bot")
	ErrGameComplete  = errors.New("game is already complete")
	ErrGameAbandoned = errors.New("game has been abandoned")
)
