package model

const (
	// DefaultWidth is the standard number of columns
	DefaultWidth = 7
	// DefaultHeight is the standard number of rows
	DefaultHeight = 6
	// WinLength is the run of checkers needed to win
	WinLength = 4
)

// Board is a Connect-Four grid. Moves at illegal columns are ignored, so
// callers that care must check IsLegalMove first.
type Board struct {
	Width  int
	Height int
	Cells  [][]Checker // Row-major: Cells[row][col], row 0 is the top
}

// NewBoard creates an empty board with the given dimensions
func NewBoard(width, height int) *Board {
	cells := make([][]Checker, height)
	for i := range cells {
		cells[i] = make([]Checker, width)
	}
	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}
}

// Get returns the checker at the given cell, or CheckerEmpty when out of bounds
func (b *Board) Get(row, col int) Checker {
	if row < 0 || row >= b.Height || col < 0 || col >= b.Width {
		return CheckerEmpty
	}
	return b.Cells[row][col]
}

// IsLegalMove returns true if col is in range and its top cell is empty
func (b *Board) IsLegalMove(col int) bool {
	if col < 0 || col >= b.Width || b.Height == 0 {
		return false
	}
	return b.Cells[0][col] == CheckerEmpty
}

// ApplyMove drops checker into col. Out-of-range or full columns are a no-op.
func (b *Board) ApplyMove(col int, checker Checker) {
	if !b.IsLegalMove(col) {
		return
	}
	for row := b.Height - 1; row >= 0; row-- {
		if b.Cells[row][col] == CheckerEmpty {
			b.Cells[row][col] = checker
			return
		}
	}
}

// UndoMove removes the topmost checker in col. Empty columns are a no-op.
func (b *Board) UndoMove(col int) {
	if col < 0 || col >= b.Width {
		return
	}
	for row := 0; row < b.Height; row++ {
		if b.Cells[row][col] != CheckerEmpty {
			b.Cells[row][col] = CheckerEmpty
			return
		}
	}
}

// WithMove applies a legal move, runs fn, and retracts the move on every exit
// path, including a panic inside fn. It returns false without calling fn if
// col is not legal.
func (b *Board) WithMove(col int, checker Checker, fn func()) bool {
	if !b.IsLegalMove(col) {
		return false
	}
	b.ApplyMove(col, checker)
	defer b.UndoMove(col)
	fn()
	return true
}

// IsFull returns true if no column admits a move
func (b *Board) IsFull() bool {
	for col := 0; col < b.Width; col++ {
		if b.IsLegalMove(col) {
			return false
		}
	}
	return true
}

// LegalMoves returns the legal columns in ascending order
func (b *Board) LegalMoves() []int {
	var cols []int
	for col := 0; col < b.Width; col++ {
		if b.IsLegalMove(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// winDirections are the row/col steps for horizontal, vertical,
// diagonal down-right and diagonal up-right lines.
var winDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// CheckWin returns true if checker has WinLength in a row anywhere on the board
func (b *Board) CheckWin(checker Checker) bool {
	if !checker.IsPlayer() {
		return false
	}
	for _, dir := range winDirections {
		dRow, dCol := dir[0], dir[1]
		for row := 0; row < b.Height; row++ {
			endRow := row + dRow*(WinLength-1)
			if endRow < 0 || endRow >= b.Height {
				continue
			}
			for col := 0; col+dCol*(WinLength-1) < b.Width; col++ {
				if b.runFrom(row, col, dRow, dCol, checker) {
					return true
				}
			}
		}
	}
	return false
}

// runFrom reports whether the WinLength cells starting at (row, col) all hold checker
func (b *Board) runFrom(row, col, dRow, dCol int, checker Checker) bool {
	for i := 0; i < WinLength; i++ {
		if b.Cells[row+i*dRow][col+i*dCol] != checker {
			return false
		}
	}
	return true
}

// WinningColumns returns, in ascending order, the legal columns where
// dropping checker would win immediately. The board is left unchanged.
func (b *Board) WinningColumns(checker Checker) []int {
	var cols []int
	for col := 0; col < b.Width; col++ {
		b.WithMove(col, checker, func() {
			if b.CheckWin(checker) {
				cols = append(cols, col)
			}
		})
	}
	return cols
}

// MoveCount returns the number of checkers on the board
func (b *Board) MoveCount() int {
	count := 0
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.Cells[row][col] != CheckerEmpty {
				count++
			}
		}
	}
	return count
}

// Clear empties every cell
func (b *Board) Clear() {
	for row := range b.Cells {
		for col := range b.Cells[row] {
			b.Cells[row][col] = CheckerEmpty
		}
	}
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Width, b.Height)
	for row := range b.Cells {
		copy(clone.Cells[row], b.Cells[row])
	}
	return clone
}

// SetBoard plays a string of single-digit columns, alternating checkers and
// starting with X. Digits outside the board are skipped but still use up a
// turn; non-digit characters are ignored.
func (b *Board) SetBoard(moves string) {
	next := CheckerX
	for _, ch := range moves {
		if ch < '0' || ch > '9' {
			continue
		}
		b.ApplyMove(int(ch-'0'), next)
		next = next.Opponent()
	}
}
