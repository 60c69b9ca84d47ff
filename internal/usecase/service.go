package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Somnion/sudoku-solver/internal/ports"
	"github.com/Somnion/sudoku-solver/internal/propagate"
	"github.com/Somnion/sudoku-solver/internal/solver"
)

// Service wires the solve pipeline: read the puzzle, parse it into an
// initial grid, search for a solution, validate it, and render the result.
type Service struct {
	Source    ports.Source
	Parser    ports.Parser
	Solver    ports.Solver
	Validator ports.Validator
	Renderer  ports.Renderer
}

func NewService(src ports.Source, p ports.Parser, s ports.Solver, v ports.Validator, r ports.Renderer) *Service {
	return &Service{Source: src, Parser: p, Solver: s, Validator: v, Renderer: r}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Run executes one solve and returns the rendered solution grid. A puzzle
// whose givens are already contradictory behaves like an exhausted search:
// solver.ErrNoSolution, not a parse failure.
func (u *Service) Run(ctx context.Context) (string, ports.Stats, error) {
	if u.Source == nil || u.Parser == nil || u.Solver == nil || u.Renderer == nil {
		return "", ports.Stats{}, errNotConfigured
	}

	input, err := u.Source.Read(ctx)
	if err != nil {
		return "", ports.Stats{}, fmt.Errorf("read puzzle: %w", err)
	}

	grid, err := u.Parser.Parse(input)
	if err != nil {
		if errors.Is(err, propagate.ErrNoRemainingValues) {
			return "", ports.Stats{}, solver.ErrNoSolution
		}
		return "", ports.Stats{}, fmt.Errorf("parse puzzle: %w", err)
	}

	solved, st, err := u.Solver.Solve(ctx, grid)
	if err != nil {
		return "", st, err
	}

	if u.Validator != nil {
		ok, conflicts, err := u.Validator.Validate(ctx, solved)
		if err != nil {
			return "", st, err
		}
		if !ok {
			return "", st, fmt.Errorf("solver produced an invalid grid, conflicts at %v", conflicts)
		}
	}

	return u.Renderer.Render(solved), st, nil
}
