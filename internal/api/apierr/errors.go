package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/connectfour-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidColumn    = "INVALID_COLUMN"
	CodeColumnFull       = "COLUMN_FULL"
	CodeBoardFull        = "BOARD_FULL"
	CodeInvalidBoardSize = "INVALID_BOARD_SIZE"
	CodeInvalidBotConfig = "INVALID_BOT_CONFIG"
	CodeNotYourTurn      = "NOT_YOUR_TURN"
	CodeGameNotFound     = "GAME_NOT_FOUND"
	CodeGameComplete     = "GAME_COMPLETE"
	CodeGameAbandoned    = "GAME_ABANDONED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Describe returns the APIError an error maps to, for transports that do
// not carry an HTTP status
func Describe(err error) APIError {
	return toHTTPError(err).apiError
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidColumn):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidColumn, "Column is out of range"}}
	case errors.Is(err, model.ErrColumnFull):
		return &httpError{http.StatusConflict, APIError{CodeColumnFull, "Column is full"}}
	case errors.Is(err, model.ErrBoardFull):
		return &httpError{http.StatusConflict, APIError{CodeBoardFull, "Board is full"}}
	case errors.Is(err, model.ErrInvalidBoardSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoardSize, err.Error()}}
	case errors.Is(err, model.ErrUnknownStrategy),
		errors.Is(err, model.ErrInvalidPly),
		errors.Is(err, model.ErrInvalidTiebreak):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBotConfig, err.Error()}}
	case errors.Is(err, model.ErrInvalidChecker):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Checker must be X or O"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrGameAbandoned):
		return &httpError{http.StatusConflict, APIError{CodeGameAbandoned, "Game has been abandoned"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
