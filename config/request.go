package config

import (
	"fmt"
	"time"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/solver"
)

// Request is one command-line invocation: either generate a rows×columns maze
// or load one from Input, then optionally solve it.
type Request struct {
	Rows      int
	Columns   int
	Algorithm string // generator name; empty selects the configured default
	Solver    string // solver name; empty skips solving
	Trace     bool   // mark expanded cells while solving
	Delay     time.Duration
	Input     string // maze text file replacing generation
	Output    string // file to write the final maze text form to
	Seed      int64
	Instant   bool // skip the animation and print only the result
	Stats     bool // print a passage summary after the maze
}

// Plan is a validated Request with algorithm names resolved.
type Plan struct {
	Request
	Generate      bool
	GeneratorKind generator.Kind
	Solve         bool
	SolverKind    solver.Kind
}

// Validate resolves r, using defaultAlgorithm when no generator is named.
// Generation and Input are mutually exclusive; maxCells bounds rows·columns
// when positive.
func (r Request) Validate(defaultAlgorithm string, maxCells int) (*Plan, error) {
	p := &Plan{Request: r}

	// 1. Source of the maze.
	if r.Input != "" {
		if r.Rows != 0 || r.Columns != 0 || r.Algorithm != "" {
			return nil, fmt.Errorf("%w: --input cannot be combined with rows, columns or --algorithm", ErrInvalidConfig)
		}
	} else {
		if r.Rows < 1 || r.Columns < 1 {
			return nil, fmt.Errorf("%w: rows and columns must be at least 1, got %dx%d", ErrInvalidConfig, r.Rows, r.Columns)
		}
		if maxCells > 0 && (r.Rows > maxCells || r.Columns > maxCells/r.Rows) {
			return nil, fmt.Errorf("%w: %dx%d exceeds the limit of %d cells", ErrInvalidConfig, r.Rows, r.Columns, maxCells)
		}
		name := r.Algorithm
		if name == "" {
			name = defaultAlgorithm
		}
		k, err := generator.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		p.Generate, p.GeneratorKind = true, k
	}

	// 2. Solving.
	if r.Solver != "" {
		k, err := solver.ParseKind(r.Solver)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		p.Solve, p.SolverKind = true, k
	} else if r.Trace {
		return nil, fmt.Errorf("%w: --trace needs --solver", ErrInvalidConfig)
	}

	if r.Delay < 0 {
		return nil, fmt.Errorf("%w: delay must not be negative", ErrInvalidConfig)
	}

	return p, nil
}
