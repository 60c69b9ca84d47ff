// Package text adapts between the flat 81-character puzzle format and
// candidate grids, and renders grids for display.
package text

import (
	"fmt"
	"unicode"

	"github.com/Somnion/sudoku-solver/internal/domain"
	"github.com/Somnion/sudoku-solver/internal/propagate"
)

// Parser feeds puzzle givens into a fresh grid through the propagation
// engine, so parsing already applies the first round of pruning. Givens that
// contradict each other surface as ErrNoRemainingValues from the engine.
type Parser struct {
	eng *propagate.Engine
}

func NewParser(eng *propagate.Engine) *Parser { return &Parser{eng: eng} }

// Parse reads an 81-cell puzzle in row-major order, rows A-I then columns
// 1-9. Runes '1'..'9' are givens; every other rune is an empty cell.
// Whitespace is ignored, so puzzles may be laid out one row per line.
func (p *Parser) Parse(input string) (*domain.Grid, error) {
	cells := make([]rune, 0, domain.SquareCount)
	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		cells = append(cells, r)
	}
	if len(cells) != domain.SquareCount {
		return nil, fmt.Errorf("puzzle has %d cells, want %d", len(cells), domain.SquareCount)
	}

	g := domain.NewGrid()
	for i, r := range cells {
		if r < '1' || r > '9' {
			continue
		}
		sq := domain.Square(i)
		if err := p.eng.Assign(g, sq, domain.Digit(r-'0')); err != nil {
			return nil, fmt.Errorf("given %c at %s: %w", r, sq, err)
		}
	}
	return g, nil
}
