package domain

// Grid is one point in the search space: the remaining candidate set of
// every square, indexed by Square. It carries no topology; the shared,
// read-only topology lives in its own package and is passed alongside.
type Grid struct {
	Cells [SquareCount]DigitSet
}

// NewGrid returns a grid with every digit still possible everywhere.
func NewGrid() *Grid {
	var g Grid
	for i := range g.Cells {
		g.Cells[i] = AllDigits
	}
	return &g
}

// Clone copies the grid so a search branch can narrow it exclusively.
// Cells is a plain array, so this is a single value copy.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}

// Candidates returns the candidate set of sq.
func (g *Grid) Candidates(sq Square) DigitSet { return g.Cells[sq] }

// Assigned reports the digit of sq when its candidate set is a singleton.
func (g *Grid) Assigned(sq Square) (Digit, bool) { return g.Cells[sq].Sole() }
