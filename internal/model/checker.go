package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Checker identifies the occupant of a board cell
type Checker uint8

const (
	CheckerEmpty Checker = iota
	CheckerX
	CheckerO
)

// Opponent returns the other player's checker. Empty has no opponent.
func (c Checker) Opponent() Checker {
	switch c {
	case CheckerX:
		return CheckerO
	case CheckerO:
		return CheckerX
	default:
		return CheckerEmpty
	}
}

// IsPlayer returns true for X and O
func (c Checker) IsPlayer() bool {
	return c == CheckerX || c == CheckerO
}

// String returns "X", "O", or a single space for an empty cell
func (c Checker) String() string {
	switch c {
	case CheckerX:
		return "X"
	case CheckerO:
		return "O"
	default:
		return " "
	}
}

// ParseChecker converts "X" or "O" (any case) to a Checker
func ParseChecker(s string) (Checker, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return CheckerX, nil
	case "O":
		return CheckerO, nil
	default:
		return CheckerEmpty, fmt.Errorf("%w: %q", ErrInvalidChecker, s)
	}
}

// MarshalJSON encodes player checkers as "X"/"O" and empty cells as ""
func (c Checker) MarshalJSON() ([]byte, error) {
	if !c.IsPlayer() {
		return json.Marshal("")
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts the encoding produced by MarshalJSON
func (c *Checker) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*c = CheckerEmpty
		return nil
	}
	parsed, err := ParseChecker(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
