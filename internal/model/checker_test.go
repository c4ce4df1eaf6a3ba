package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerOpponent(t *testing.T) {
	assert.Equal(t, CheckerO, CheckerX.Opponent())
	assert.Equal(t, CheckerX, CheckerO.Opponent())
	assert.Equal(t, CheckerEmpty, CheckerEmpty.Opponent())
}

func TestParseChecker(t *testing.T) {
	c, err := ParseChecker("x")
	require.NoError(t, err)
	assert.Equal(t, CheckerX, c)

	c, err = ParseChecker(" O ")
	require.NoError(t, err)
	assert.Equal(t, CheckerO, c)

	_, err = ParseChecker("Z")
	assert.ErrorIs(t, err, ErrInvalidChecker)
}

func TestCheckerJSON(t *testing.T) {
	data, err := json.Marshal([]Checker{CheckerX, CheckerEmpty, CheckerO})
	require.NoError(t, err)
	assert.JSONEq(t, `["X","","O"]`, string(data))

	var decoded []Checker
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []Checker{CheckerX, CheckerEmpty, CheckerO}, decoded)

	var bad Checker
	assert.ErrorIs(t, json.Unmarshal([]byte(`"Q"`), &bad), ErrInvalidChecker)
}

func TestParseTiebreakPolicy(t *testing.T) {
	p, err := ParseTiebreakPolicy("right")
	require.NoError(t, err)
	assert.Equal(t, TiebreakRight, p)

	_, err = ParseTiebreakPolicy("middle")
	assert.ErrorIs(t, err, ErrInvalidTiebreak)
}
