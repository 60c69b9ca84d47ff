package domain

import "fmt"

// Board dimensions. The engine is written against these constants; changing
// them would also require new box geometry in the topology package.
const (
	GridSize    = 9
	BoxSize     = 3
	SquareCount = GridSize * GridSize
)

// Square identifies one of the 81 cells by row-major index (row A column 1
// is 0, row I column 9 is 80). The index order is also the total order used
// for tie-breaking.
type Square int

// SquareAt returns the square at the given zero-based row and column.
func SquareAt(row, col int) Square { return Square(row*GridSize + col) }

func (s Square) Row() int { return int(s) / GridSize }
func (s Square) Col() int { return int(s) % GridSize }

// Box returns the index of the 3×3 box containing s, numbered row-major
// from the top-left box.
func (s Square) Box() int { return (s.Row()/BoxSize)*BoxSize + s.Col()/BoxSize }

// String renders the conventional coordinate, rows A-I and columns 1-9.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'A'+s.Row(), s.Col()+1)
}
