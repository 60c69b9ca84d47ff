package ports

import (
	"context"
	"time"

	"github.com/Somnion/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver searches for a completion of the given candidate grid. The input
// grid is not mutated; branches work on clones.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
}

// Validator checks that a grid is a complete, legal solution.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.Square, err error)
}

// Source supplies the raw puzzle text for a single run.
type Source interface {
	Read(ctx context.Context) (string, error)
}

// Parser turns puzzle text into an initial candidate grid.
type Parser interface {
	Parse(input string) (*domain.Grid, error)
}

// Renderer formats a grid for display.
type Renderer interface {
	Render(g *domain.Grid) string
}
