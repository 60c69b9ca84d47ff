// Package propagate implements the constraint-propagation engine. Assigning
// a digit or eliminating a candidate triggers two rules until a fixed point
// or a contradiction: a square left with one candidate forbids that digit
// for all of its peers, and a unit left with one place for a digit forces
// that place to take it.
package propagate

import (
	"errors"

	"github.com/Somnion/sudoku-solver/internal/domain"
	"github.com/Somnion/sudoku-solver/internal/topology"
)

// ErrNoRemainingValues signals a contradiction: a square ran out of
// candidates, or a unit ran out of places for a digit. During search this is
// an expected, frequent outcome; the caller discards the grid and moves on.
var ErrNoRemainingValues = errors.New("no remaining candidate values")

// Engine applies the propagation rules over a shared board topology. It is
// stateless apart from the topology reference and safe for concurrent use;
// all mutable state lives in the grid passed to each call.
type Engine struct {
	topo *topology.Topology
}

func New(topo *topology.Topology) *Engine { return &Engine{topo: topo} }

// elimination is one pending obligation: remove digit d from square sq.
type elimination struct {
	sq domain.Square
	d  domain.Digit
}

// Assign constrains sq to exactly d by eliminating every other candidate
// from its set. On error the grid is partially narrowed and must be
// discarded; each grid is only ever used on a single search branch, so no
// undo is needed.
func (e *Engine) Assign(g *domain.Grid, sq domain.Square, d domain.Digit) error {
	queue := make([]elimination, 0, domain.GridSize-1)
	for _, other := range g.Cells[sq].Without(d).Digits() {
		queue = append(queue, elimination{sq, other})
	}
	return e.drain(g, queue)
}

// Eliminate removes d from sq's candidates and propagates the consequences.
// Removing a digit that is already absent is a no-op.
func (e *Engine) Eliminate(g *domain.Grid, sq domain.Square, d domain.Digit) error {
	return e.drain(g, []elimination{{sq, d}})
}

// drain works through the elimination queue. Consequences of an elimination
// are appended as further obligations rather than recursed into, which keeps
// the stack flat no matter how long a propagation cascade runs.
func (e *Engine) drain(g *domain.Grid, queue []elimination) error {
	for len(queue) > 0 {
		job := queue[0]
		queue = queue[1:]

		set := g.Cells[job.sq]
		if !set.Has(job.d) {
			continue
		}
		set = set.Without(job.d)
		if set == 0 {
			return ErrNoRemainingValues
		}
		g.Cells[job.sq] = set

		// A solved square forbids its digit everywhere it is visible.
		if sole, ok := set.Sole(); ok {
			for _, peer := range e.topo.Peers(job.sq) {
				queue = append(queue, elimination{peer, sole})
			}
		}

		// The eliminated digit must still fit somewhere in each unit the
		// square belongs to. One place left forces the assignment there.
		for _, unit := range e.topo.UnitsOf(job.sq) {
			places, err := e.PlacesForDigit(g, unit, job.d)
			if err != nil {
				return err
			}
			if forced, ok := places.Forced(); ok {
				for _, other := range g.Cells[forced].Without(job.d).Digits() {
					queue = append(queue, elimination{forced, other})
				}
			}
		}
	}
	return nil
}

// Placements classifies how many squares in a unit still admit a digit.
// The zero-candidate case is an error, never a Placements value.
type Placements struct {
	Squares []domain.Square
}

// Forced returns the square that must take the digit, when it is the only
// remaining place in the unit.
func (p Placements) Forced() (domain.Square, bool) {
	if len(p.Squares) == 1 {
		return p.Squares[0], true
	}
	return 0, false
}

// PlacesForDigit scans a unit for squares whose candidates still include d.
// Zero such squares means the branch is contradictory.
func (e *Engine) PlacesForDigit(g *domain.Grid, unit topology.Unit, d domain.Digit) (Placements, error) {
	squares := make([]domain.Square, 0, domain.GridSize)
	for _, sq := range unit {
		if g.Cells[sq].Has(d) {
			squares = append(squares, sq)
		}
	}
	if len(squares) == 0 {
		return Placements{}, ErrNoRemainingValues
	}
	return Placements{Squares: squares}, nil
}
