package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Somnion/sudoku-solver/internal/domain"
	"github.com/Somnion/sudoku-solver/internal/topology"
)

const solution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func solvedGrid(t *testing.T) *domain.Grid {
	t.Helper()
	require.Len(t, solution, domain.SquareCount)
	g := domain.NewGrid()
	for i, ch := range solution {
		g.Cells[i] = domain.SetOf(domain.Digit(ch - '0'))
	}
	return g
}

func TestValidateSolvedGrid(t *testing.T) {
	v := New(topology.New())
	ok, conflicts, err := v.Validate(context.Background(), solvedGrid(t))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateDuplicateInRow(t *testing.T) {
	v := New(topology.New())
	g := solvedGrid(t)
	// copy A1's digit into A2, breaking the row, column B2's column, and the box
	g.Cells[domain.SquareAt(0, 1)] = g.Cells[domain.SquareAt(0, 0)]

	ok, conflicts, err := v.Validate(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conflicts)
}

func TestValidateUnassignedSquare(t *testing.T) {
	v := New(topology.New())
	g := solvedGrid(t)
	g.Cells[40] = domain.SetOf(1, 2)

	ok, conflicts, err := v.Validate(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.Square(40))
}

func TestValidateCanceledContext(t *testing.T) {
	v := New(topology.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := v.Validate(ctx, solvedGrid(t))
	assert.ErrorIs(t, err, context.Canceled)
}
