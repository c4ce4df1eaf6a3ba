package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomIntnInRange(t *testing.T) {
	r := New()
	for i := 0; i < 100; i++ {
		v := r.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestCryptoRandomIntnNonPositive(t *testing.T) {
	assert.Equal(t, 0, New().Intn(0))
	assert.Equal(t, 0, New().Intn(-3))
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.String(12, "ABCDEF"), b.String(12, "ABCDEF"))
}

func TestSeededRandomStringUsesAlphabet(t *testing.T) {
	s := NewSeeded(7).String(32, "XO")
	assert.Len(t, s, 32)
	for _, ch := range s {
		assert.Contains(t, "XO", string(ch))
	}
}

func TestSeededRandomEmptyInputs(t *testing.T) {
	r := NewSeeded(1)
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, "", r.String(0, "AB"))
	assert.Equal(t, "", r.String(5, ""))
}
