package text

import (
	"fmt"
	"strings"

	"github.com/Somnion/sudoku-solver/internal/domain"
)

// DefaultCellWidth fits the longest possible cell, a full nine-candidate
// set, with room to spare for the common short ones.
const DefaultCellWidth = 6

// Renderer prints a grid as 9 lines of right-aligned, space-separated
// cells. Solved grids come out as single digits; partial grids show each
// cell's remaining candidate string.
type Renderer struct {
	CellWidth int
}

func NewRenderer() *Renderer { return &Renderer{CellWidth: DefaultCellWidth} }

func (r *Renderer) Render(g *domain.Grid) string {
	width := r.CellWidth
	if width <= 0 {
		width = DefaultCellWidth
	}
	var b strings.Builder
	for i := range g.Cells {
		fmt.Fprintf(&b, "%*s ", width, g.Cells[i].String())
		if (i+1)%domain.GridSize == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
