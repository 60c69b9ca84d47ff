package validator

import (
	"context"

	"github.com/Somnion/sudoku-solver/internal/domain"
	"github.com/Somnion/sudoku-solver/internal/topology"
)

// Solved verifies that a grid is a complete, legal solution: every square
// holds exactly one candidate and every unit holds each digit exactly once.
// Propagation guarantees this by construction, but the pipeline checks it
// explicitly rather than trusting the local rules.
type Solved struct {
	topo *topology.Topology
}

func New(topo *topology.Topology) *Solved { return &Solved{topo: topo} }

func (v *Solved) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Square, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}

	conflicts := make([]domain.Square, 0, 8)
	var flagged [domain.SquareCount]bool
	flag := func(sq domain.Square) {
		if !flagged[sq] {
			flagged[sq] = true
			conflicts = append(conflicts, sq)
		}
	}

	for i := range g.Cells {
		if _, ok := g.Cells[i].Sole(); !ok {
			flag(domain.Square(i))
		}
	}
	for _, unit := range v.topo.Units() {
		var seen domain.DigitSet
		for _, sq := range unit {
			d, ok := g.Cells[sq].Sole()
			if !ok {
				continue
			}
			if seen.Has(d) {
				flag(sq)
				continue
			}
			seen = seen.With(d)
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
