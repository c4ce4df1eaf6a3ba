package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/services/bot"
	"github.com/mcoot/connectfour-go/internal/services/match"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// PrintBoard renders a board in text form
func (o *Output) PrintBoard(b *model.Board) {
	fmt.Fprint(o.w, board.Render(b))
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case MoveResult:
		o.printMoveResult(v)
	case Scores:
		o.printScores(v)
	case Summaries:
		o.printSummaries(v)
	case *bot.Analysis:
		o.printScores(scoresFromAnalysis(v))
	case *match.Result:
		o.printMatchResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Seat response type (matches API)
type Seat struct {
	Name     string `json:"name"`
	IsBot    bool   `json:"is_bot"`
	Strategy string `json:"strategy,omitempty"`
	Ply      int    `json:"ply,omitempty"`
	Tiebreak string `json:"tiebreak,omitempty"`
}

// Game response type
type Game struct {
	ID          string   `json:"id"`
	State       string   `json:"state"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Rows        []string `json:"rows"`
	NextChecker string   `json:"next_checker,omitempty"`
	Winner      string   `json:"winner,omitempty"`
	Moves       []int    `json:"moves"`
	SeatX       Seat     `json:"seat_x"`
	SeatO       Seat     `json:"seat_o"`
}

// BotMove response type
type BotMove struct {
	Checker  string `json:"checker"`
	Column   int    `json:"column"`
	Strategy string `json:"strategy"`
}

// MoveResult response type, also returned when creating a game
type MoveResult struct {
	Game     Game      `json:"game"`
	BotMoves []BotMove `json:"bot_moves"`
}

// Scores response type
type Scores struct {
	Checker    string    `json:"checker"`
	Ply        int       `json:"ply"`
	Tiebreak   string    `json:"tiebreak"`
	Scores     []float64 `json:"scores"`
	BestColumn int       `json:"best_column"`
}

// Summary response type
type Summary struct {
	ID          string    `json:"id"`
	Outcome     string    `json:"outcome"`
	Winner      *string   `json:"winner"`
	SeatX       Seat      `json:"seat_x"`
	SeatO       Seat      `json:"seat_o"`
	MoveCount   int       `json:"move_count"`
	CompletedAt time.Time `json:"completed_at"`
}

// Summaries response type
type Summaries struct {
	Games []Summary `json:"games"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func scoresFromAnalysis(a *bot.Analysis) Scores {
	return Scores{
		Checker:    a.Checker.String(),
		Ply:        a.Ply,
		Tiebreak:   string(a.Tiebreak),
		Scores:     a.Scores,
		BestColumn: a.BestColumn,
	}
}

// describeSeat renders a seat as e.g. "Alice (human)" or
// "Deep Blue (lookahead bot, ply 4, LEFT)"
func describeSeat(s Seat) string {
	if !s.IsBot {
		return fmt.Sprintf("%s (human)", s.Name)
	}
	if s.Strategy == model.BotStrategyLookahead {
		return fmt.Sprintf("%s (%s bot, ply %d, %s)", s.Name, s.Strategy, s.Ply, s.Tiebreak)
	}
	return fmt.Sprintf("%s (%s bot)", s.Name, s.Strategy)
}

// boardFromRows rebuilds a board from the API's row strings
func boardFromRows(width, height int, rows []string) *model.Board {
	b := model.NewBoard(width, height)
	for r, line := range rows {
		if r >= height {
			break
		}
		for c, ch := range line {
			if c >= width {
				break
			}
			switch ch {
			case 'X':
				b.Cells[r][c] = model.CheckerX
			case 'O':
				b.Cells[r][c] = model.CheckerO
			}
		}
	}
	return b
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "X: %s\n", describeSeat(g.SeatX))
	fmt.Fprintf(o.w, "O: %s\n", describeSeat(g.SeatO))
	fmt.Fprintln(o.w)
	o.PrintBoard(boardFromRows(g.Width, g.Height, g.Rows))

	switch {
	case g.Winner != "":
		fmt.Fprintf(o.w, "Winner: %s\n", g.Winner)
	case g.NextChecker != "":
		fmt.Fprintf(o.w, "Next: %s\n", g.NextChecker)
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	for _, bm := range m.BotMoves {
		fmt.Fprintf(o.w, "%s (%s) plays column %d\n", bm.Checker, bm.Strategy, bm.Column)
	}
	o.printGame(m.Game)
}

func (o *Output) printScores(s Scores) {
	fmt.Fprintf(o.w, "Scores for %s (ply %d, %s):\n", s.Checker, s.Ply, s.Tiebreak)

	cols := make([]string, len(s.Scores))
	values := make([]string, len(s.Scores))
	for i, v := range s.Scores {
		cols[i] = fmt.Sprintf("%5d", i)
		values[i] = fmt.Sprintf("%5s", strconv.FormatFloat(v, 'f', -1, 64))
	}
	fmt.Fprintf(o.w, "  column %s\n", strings.Join(cols, " "))
	fmt.Fprintf(o.w, "  score  %s\n", strings.Join(values, " "))

	if s.BestColumn >= 0 {
		fmt.Fprintf(o.w, "Best column: %d\n", s.BestColumn)
	} else {
		fmt.Fprintln(o.w, "Best column: none (board is full)")
	}
}

func (o *Output) printSummaries(s Summaries) {
	if len(s.Games) == 0 {
		fmt.Fprintln(o.w, "No completed games")
		return
	}
	fmt.Fprintf(o.w, "Completed games (%d):\n", len(s.Games))
	for _, g := range s.Games {
		result := g.Outcome
		if g.Winner != nil {
			result = fmt.Sprintf("%s by %s", g.Outcome, *g.Winner)
		}
		fmt.Fprintf(o.w, "  - %s: %s vs %s, %s after %d moves\n",
			g.ID, g.SeatX.Name, g.SeatO.Name, result, g.MoveCount)
	}
}

func (o *Output) printMatchResult(r *match.Result) {
	fmt.Fprintf(o.w, "Games: %d\n", len(r.Games))
	fmt.Fprintf(o.w, "X wins: %d\n", r.XWins)
	fmt.Fprintf(o.w, "O wins: %d\n", r.OWins)
	fmt.Fprintf(o.w, "Draws: %d\n", r.Draws)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
