package solver

import (
	"context"
	"sync"
	"time"

	"github.com/Somnion/sudoku-solver/internal/domain"
	"github.com/Somnion/sudoku-solver/internal/ports"
	"github.com/Somnion/sudoku-solver/internal/propagate"
)

// Parallel explores the candidate digits of the first branch square on
// separate goroutines, each over its own clone. The first goroutine to
// solve wins and cancels the rest; cancellation is advisory, so in-flight
// siblings finish their current node before stopping. Sharing the topology
// read-only and cloning per branch is what makes this safe.
type Parallel struct {
	eng *propagate.Engine
}

func NewParallel(eng *propagate.Engine) *Parallel { return &Parallel{eng: eng} }

func (s *Parallel) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()

	branch, solved, live := status(g)
	if !live {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	if solved {
		return g.Clone(), ports.Stats{Duration: time.Since(start)}, nil
	}

	branchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		grid  *domain.Grid
		nodes int
	}
	outcomes := make(chan outcome, domain.GridSize)
	inner := &Backtracker{eng: s.eng}

	var wg sync.WaitGroup
	for _, d := range g.Cells[branch].Digits() {
		wg.Add(1)
		go func(d domain.Digit) {
			defer wg.Done()
			nodes := 1
			clone := g.Clone()
			if err := s.eng.Assign(clone, branch, d); err != nil {
				outcomes <- outcome{nodes: nodes}
				return
			}
			out, found := inner.search(branchCtx, clone, &nodes)
			if found {
				cancel()
			}
			outcomes <- outcome{grid: out, nodes: nodes}
		}(d)
	}
	wg.Wait()
	close(outcomes)

	st := ports.Stats{}
	var solution *domain.Grid
	for o := range outcomes {
		st.Nodes += o.nodes
		if o.grid != nil && solution == nil {
			solution = o.grid
		}
	}
	st.Duration = time.Since(start)

	if solution == nil {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrNoSolution
	}
	return solution, st, nil
}
