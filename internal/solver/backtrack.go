// Package solver performs depth-first search over candidate grids, using
// the propagation engine as its consistency oracle and branching on the
// square with the fewest remaining candidates.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/Somnion/sudoku-solver/internal/domain"
	"github.com/Somnion/sudoku-solver/internal/ports"
	"github.com/Somnion/sudoku-solver/internal/propagate"
)

// ErrNoSolution is returned when every branch of the search exhausts.
var ErrNoSolution = errors.New("no solution found")

// Backtracker is the sequential depth-first solver.
type Backtracker struct {
	eng *propagate.Engine
}

func NewBacktracker(eng *propagate.Engine) *Backtracker { return &Backtracker{eng: eng} }

func (s *Backtracker) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	out, found := s.search(ctx, g, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !found {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	return out, st, nil
}

// search returns a solved grid, or false when this branch (and everything
// under it) is infeasible. Contradictions are consumed here; they never
// propagate past the branch that produced them.
func (s *Backtracker) search(ctx context.Context, g *domain.Grid, nodes *int) (*domain.Grid, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	branch, solved, live := status(g)
	if !live {
		return nil, false
	}
	if solved {
		return g, true
	}
	for _, d := range g.Cells[branch].Digits() {
		*nodes++
		clone := g.Clone()
		if err := s.eng.Assign(clone, branch, d); err != nil {
			continue // dead branch, drop the clone
		}
		if out, found := s.search(ctx, clone, nodes); found {
			return out, true
		}
	}
	return nil, false
}

// status folds over every square in one pass: live=false when any candidate
// set is empty, solved when all 81 are singletons, and otherwise the square
// with the fewest remaining candidates. Ties go to the smallest square in
// row-major order, which keeps search traces reproducible.
func status(g *domain.Grid) (branch domain.Square, solved, live bool) {
	assigned := 0
	best := domain.Square(0)
	bestCount := domain.GridSize + 1
	for i := range g.Cells {
		switch n := g.Cells[i].Count(); {
		case n == 0:
			return 0, false, false
		case n == 1:
			assigned++
		case n < bestCount:
			best, bestCount = domain.Square(i), n
		}
	}
	if assigned == domain.SquareCount {
		return 0, true, true
	}
	return best, false, true
}
