// Package topology derives the static structure of a 9×9 board: the 27
// units (rows, columns, boxes), the three units owning each square, and the
// 20 peers each square shares a unit with. It is purely combinatorial,
// built once per process, and read-only afterwards, so a single Topology is
// safely shared by every grid, including across goroutines.
package topology

import (
	"slices"

	"github.com/Somnion/sudoku-solver/internal/domain"
)

// UnitCount is the number of units on the board: 9 rows + 9 columns + 9 boxes.
const UnitCount = 3 * domain.GridSize

// PeerCount is the number of peers of any square: 8 in its row, 8 in its
// column, and the 4 box squares not already counted.
const PeerCount = 20

// Unit is a group of 9 squares that must hold a permutation of 1..9.
type Unit [domain.GridSize]domain.Square

// Contains reports whether sq belongs to the unit.
func (u Unit) Contains(sq domain.Square) bool {
	for _, member := range u {
		if member == sq {
			return true
		}
	}
	return false
}

// Topology holds every unit and the per-square lookup tables, all keyed by
// square index. Accessors return views into the internal arrays; callers
// must treat them as read-only.
type Topology struct {
	units   [UnitCount]Unit
	unitsOf [domain.SquareCount][3]Unit
	peers   [domain.SquareCount][PeerCount]domain.Square
}

// New builds the full topology. Rows come first, then columns, then boxes,
// so unit indexes 0-8 are rows, 9-17 columns, 18-26 boxes.
func New() *Topology {
	t := &Topology{}

	n := 0
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			t.units[n][c] = domain.SquareAt(r, c)
		}
		n++
	}
	for c := 0; c < domain.GridSize; c++ {
		for r := 0; r < domain.GridSize; r++ {
			t.units[n][r] = domain.SquareAt(r, c)
		}
		n++
	}
	for br := 0; br < domain.GridSize; br += domain.BoxSize {
		for bc := 0; bc < domain.GridSize; bc += domain.BoxSize {
			i := 0
			for dr := 0; dr < domain.BoxSize; dr++ {
				for dc := 0; dc < domain.BoxSize; dc++ {
					t.units[n][i] = domain.SquareAt(br+dr, bc+dc)
					i++
				}
			}
			n++
		}
	}

	var owned [domain.SquareCount]int
	for _, u := range t.units {
		for _, sq := range u {
			t.unitsOf[sq][owned[sq]] = u
			owned[sq]++
		}
	}

	for sq := domain.Square(0); sq < domain.SquareCount; sq++ {
		var seen [domain.SquareCount]bool
		i := 0
		for _, u := range t.unitsOf[sq] {
			for _, p := range u {
				if p != sq && !seen[p] {
					seen[p] = true
					t.peers[sq][i] = p
					i++
				}
			}
		}
		slices.Sort(t.peers[sq][:])
	}

	return t
}

// Units returns all 27 units.
func (t *Topology) Units() []Unit { return t.units[:] }

// UnitsOf returns the three units containing sq: its row, column, and box.
func (t *Topology) UnitsOf(sq domain.Square) []Unit { return t.unitsOf[sq][:] }

// Peers returns the 20 squares sharing a unit with sq, in ascending order.
func (t *Topology) Peers(sq domain.Square) []domain.Square { return t.peers[sq][:] }
