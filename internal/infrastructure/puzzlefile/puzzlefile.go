// Package puzzlefile reads the one-shot puzzle input file.
package puzzlefile

import (
	"context"
	"fmt"
	"os"
)

// Source reads the whole puzzle file once per run. The file handle is not
// held past the read.
type Source struct {
	path string
}

func New(path string) *Source { return &Source{path: path} }

func (s *Source) Read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("puzzle file: %w", err)
	}
	return string(data), nil
}
