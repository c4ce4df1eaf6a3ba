package live

import "github.com/mcoot/connectfour-go/internal/model"

// EventType names a live game event
type EventType string

const (
	EventState EventType = "state" // Full game snapshot
	EventMove  EventType = "move"  // A checker was dropped
	EventError EventType = "error" // A client request was refused
)

// Event is the JSON envelope sent to live clients
type Event struct {
	Type    EventType `json:"type"`
	Game    *GameView `json:"game,omitempty"`
	Checker string    `json:"checker,omitempty"`
	Column  *int      `json:"column,omitempty"`
	Message string    `json:"message,omitempty"`
}

// GameView is the client-facing shape of a game
type GameView struct {
	ID          string   `json:"id"`
	State       string   `json:"state"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Rows        []string `json:"rows"`
	NextChecker string   `json:"next_checker,omitempty"`
	Winner      string   `json:"winner,omitempty"`
	Moves       []int    `json:"moves"`
	SeatX       SeatView `json:"seat_x"`
	SeatO       SeatView `json:"seat_o"`
}

// SeatView is the client-facing shape of a seat
type SeatView struct {
	Name     string `json:"name"`
	IsBot    bool   `json:"is_bot"`
	Strategy string `json:"strategy,omitempty"`
	Ply      int    `json:"ply,omitempty"`
	Tiebreak string `json:"tiebreak,omitempty"`
}

// NewGameView converts a game for clients. Rows run top to bottom, with
// '.' for an empty cell.
func NewGameView(g *model.Game) *GameView {
	rows := make([]string, g.Board.Height)
	for r := 0; r < g.Board.Height; r++ {
		line := make([]byte, g.Board.Width)
		for c := 0; c < g.Board.Width; c++ {
			switch g.Board.Get(r, c) {
			case model.CheckerX:
				line[c] = 'X'
			case model.CheckerO:
				line[c] = 'O'
			default:
				line[c] = '.'
			}
		}
		rows[r] = string(line)
	}

	view := &GameView{
		ID:     string(g.ID),
		State:  string(g.State),
		Width:  g.Board.Width,
		Height: g.Board.Height,
		Rows:   rows,
		Moves:  append([]int{}, g.Moves...),
		SeatX:  NewSeatView(g.SeatX),
		SeatO:  NewSeatView(g.SeatO),
	}
	if g.State == model.GameStateInProgress {
		view.NextChecker = g.NextChecker.String()
	}
	if g.Winner.IsPlayer() {
		view.Winner = g.Winner.String()
	}
	return view
}

// NewSeatView converts a seat for clients
func NewSeatView(s model.Seat) SeatView {
	return SeatView{
		Name:     s.Name,
		IsBot:    s.IsBot,
		Strategy: s.Strategy,
		Ply:      s.Ply,
		Tiebreak: string(s.Tiebreak),
	}
}

// StateEvent wraps a game snapshot
func StateEvent(g *model.Game) Event {
	return Event{Type: EventState, Game: NewGameView(g)}
}

// MoveEvent reports a move together with the resulting game
func MoveEvent(g *model.Game, checker model.Checker, col int) Event {
	return Event{Type: EventMove, Game: NewGameView(g), Checker: checker.String(), Column: &col}
}

// ErrorEvent reports a refused client request
func ErrorEvent(message string) Event {
	return Event{Type: EventError, Message: message}
}
