package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Somnion/sudoku-solver/internal/adapters/text"
	"github.com/Somnion/sudoku-solver/internal/infrastructure/puzzlefile"
	"github.com/Somnion/sudoku-solver/internal/ports"
	"github.com/Somnion/sudoku-solver/internal/propagate"
	"github.com/Somnion/sudoku-solver/internal/solver"
	"github.com/Somnion/sudoku-solver/internal/topology"
	"github.com/Somnion/sudoku-solver/internal/usecase"
	"github.com/Somnion/sudoku-solver/internal/validator"
)

var (
	puzzlePath  string
	solverKind  string
	logLevel    string
	cellWidth   int
	pauseAtExit bool
	profileMode string
)

func main() {
	root := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a 9x9 Sudoku puzzle with constraint propagation and search",
		Long: `sudoku reads an 81-cell puzzle from a file and prints the solved grid.

Cells are read in row-major order; the digits 1-9 are givens and any other
non-whitespace character marks an empty cell.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&puzzlePath, "puzzle", "p", "sudoku.txt", "puzzle file (81 cells, row-major)")
	root.Flags().StringVar(&solverKind, "solver", "backtrack", "solver to use: backtrack|parallel")
	root.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.Flags().IntVar(&cellWidth, "cell-width", text.DefaultCellWidth, "rendered cell width")
	root.Flags().BoolVar(&pauseAtExit, "pause", false, "wait for a keypress before exiting")
	root.Flags().StringVar(&profileMode, "profile", "", "write a profile to the working directory: cpu|mem")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger := newLogger(logLevel)

	switch strings.ToLower(strings.TrimSpace(profileMode)) {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	topo := topology.New()
	eng := propagate.New(topo)

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(solverKind)) {
	case "parallel":
		s = solver.NewParallel(eng)
	default:
		s = solver.NewBacktracker(eng)
	}

	svc := usecase.NewService(
		puzzlefile.New(puzzlePath),
		text.NewParser(eng),
		s,
		validator.New(topo),
		&text.Renderer{CellWidth: cellWidth},
	)

	logger.Info().Str("puzzle", puzzlePath).Str("solver", solverKind).Msg("solving")
	out, st, err := svc.Run(cmd.Context())
	if err != nil {
		if pauseAtExit {
			defer waitForKeypress()
		}
		if errors.Is(err, solver.ErrNoSolution) {
			logger.Warn().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("search exhausted, no solution")
			return err
		}
		logger.Error().Err(err).Msg("solve failed")
		return err
	}

	fmt.Fprint(os.Stdout, out)
	logger.Info().Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("solved")
	if pauseAtExit {
		waitForKeypress()
	}
	return nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func waitForKeypress() {
	fmt.Fprint(os.Stdout, "Press Enter to continue...")
	_, _ = bufio.NewReader(os.Stdin).ReadBytes('\n')
}
