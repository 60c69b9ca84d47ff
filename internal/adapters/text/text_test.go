package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Somnion/sudoku-solver/internal/domain"
	"github.com/Somnion/sudoku-solver/internal/propagate"
	"github.com/Somnion/sudoku-solver/internal/topology"
)

const (
	samplePuzzle   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	sampleSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func newParser() *Parser {
	return NewParser(propagate.New(topology.New()))
}

func TestParseAppliesGivens(t *testing.T) {
	g, err := newParser().Parse(samplePuzzle)
	require.NoError(t, err)

	d, ok := g.Assigned(domain.SquareAt(0, 0))
	require.True(t, ok)
	assert.Equal(t, domain.Digit(5), d)

	// the blank A3 must already have lost its row neighbours' givens
	a3 := g.Cells[domain.SquareAt(0, 2)]
	assert.False(t, a3.Has(5))
	assert.False(t, a3.Has(3))
	assert.False(t, a3.Has(7))
}

func TestParseIgnoresWhitespace(t *testing.T) {
	var rows []string
	for i := 0; i < domain.SquareCount; i += domain.GridSize {
		rows = append(rows, samplePuzzle[i:i+domain.GridSize])
	}
	multiline := strings.Join(rows, "\n") + "\n"

	got, err := newParser().Parse(multiline)
	require.NoError(t, err)
	want, err := newParser().Parse(samplePuzzle)
	require.NoError(t, err)
	assert.Equal(t, *want, *got)
}

func TestParseBlankMarkers(t *testing.T) {
	// any non-digit, non-space rune marks a blank cell
	for _, marker := range []string{".", "0", "x", "?"} {
		t.Run(marker, func(t *testing.T) {
			g, err := newParser().Parse(strings.Repeat(marker, domain.SquareCount))
			require.NoError(t, err)
			for i := range g.Cells {
				assert.Equal(t, domain.AllDigits, g.Cells[i])
			}
		})
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	_, err := newParser().Parse(strings.Repeat(".", 80))
	assert.Error(t, err)
	_, err = newParser().Parse(strings.Repeat(".", 82))
	assert.Error(t, err)
}

func TestParseConflictingGivens(t *testing.T) {
	// two fives in row A
	puzzle := "55" + strings.Repeat(".", domain.SquareCount-2)
	_, err := newParser().Parse(puzzle)
	assert.ErrorIs(t, err, propagate.ErrNoRemainingValues)
}

func TestRenderSolvedGrid(t *testing.T) {
	g, err := newParser().Parse(sampleSolution)
	require.NoError(t, err)

	r := &Renderer{CellWidth: 1}
	out := r.Render(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, domain.GridSize)
	assert.Equal(t, "5 3 4 6 7 8 9 1 2", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "3 4 5 2 8 6 1 7 9", strings.TrimRight(lines[8], " "))
}

func TestRenderPartialGridShowsCandidates(t *testing.T) {
	g := domain.NewGrid()
	out := NewRenderer().Render(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, domain.GridSize)
	// every cell still holds the full candidate string
	assert.Equal(t, strings.Count(out, "123456789"), domain.SquareCount)
}

func TestRenderRightAligns(t *testing.T) {
	g, err := newParser().Parse(sampleSolution)
	require.NoError(t, err)

	out := (&Renderer{CellWidth: 6}).Render(g)
	assert.True(t, strings.HasPrefix(out, "     5      3 "), "digits are right-aligned to the cell width")
}
