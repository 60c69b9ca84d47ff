package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareCoordinates(t *testing.T) {
	cases := []struct {
		row, col int
		index    Square
		name     string
		box      int
	}{
		{0, 0, 0, "A1", 0},
		{0, 8, 8, "A9", 2},
		{4, 4, 40, "E5", 4},
		{8, 0, 72, "I1", 6},
		{8, 8, 80, "I9", 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sq := SquareAt(tc.row, tc.col)
			assert.Equal(t, tc.index, sq)
			assert.Equal(t, tc.row, sq.Row())
			assert.Equal(t, tc.col, sq.Col())
			assert.Equal(t, tc.box, sq.Box())
			assert.Equal(t, tc.name, sq.String())
		})
	}
}

func TestDigitSetMembership(t *testing.T) {
	assert.Equal(t, 9, AllDigits.Count())
	for d := Digit(1); d <= 9; d++ {
		assert.True(t, AllDigits.Has(d))
	}

	s := SetOf(3, 7, 9)
	assert.Equal(t, 3, s.Count())
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(4))
	assert.Equal(t, "379", s.String())
	assert.Equal(t, []Digit{3, 7, 9}, s.Digits())

	s = s.Without(7)
	assert.False(t, s.Has(7))
	// removing an absent digit changes nothing
	assert.Equal(t, s, s.Without(7))
}

func TestDigitSetSole(t *testing.T) {
	_, ok := AllDigits.Sole()
	assert.False(t, ok)
	_, ok = DigitSet(0).Sole()
	assert.False(t, ok)

	d, ok := SetOf(6).Sole()
	require.True(t, ok)
	assert.Equal(t, Digit(6), d)
}

func TestGridLifecycle(t *testing.T) {
	g := NewGrid()
	for i := range g.Cells {
		assert.Equal(t, AllDigits, g.Cells[i])
	}

	_, ok := g.Assigned(SquareAt(2, 2))
	assert.False(t, ok)

	g.Cells[SquareAt(2, 2)] = SetOf(4)
	d, ok := g.Assigned(SquareAt(2, 2))
	require.True(t, ok)
	assert.Equal(t, Digit(4), d)

	clone := g.Clone()
	clone.Cells[0] = SetOf(1)
	assert.Equal(t, AllDigits, g.Cells[0], "clone must not alias the original")
	assert.Equal(t, SetOf(4), clone.Candidates(SquareAt(2, 2)))
}
