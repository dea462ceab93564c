package generator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/runner"
)

// New returns the stepper for algorithm kind carving through ed.
// The maze behind ed must be fully walled (see maze.NewWalled).
func New(kind Kind, ed *maze.Editor, rng *rand.Rand) (runner.Stepper, error) {
	// 1. Validate inputs.
	if ed == nil || ed.Maze() == nil {
		return nil, ErrNilMaze
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if n := ed.Maze().OpenCount(); n != 0 {
		return nil, fmt.Errorf("%w: %d walls already open", ErrNotWalled, n)
	}

	// 2. Dispatch once on the closed set of algorithms.
	switch kind {
	case DepthFirst:
		return newDepthFirst(ed, rng), nil
	case BreadthFirst:
		return newBreadthFirst(ed, rng), nil
	case Kruskal:
		return newKruskal(ed, rng), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Generate carves m with algorithm kind, driving the stepper through
// runner.Run. It returns the number of steps taken.
func Generate(ctx context.Context, m *maze.Maze, kind Kind, rng *rand.Rand, opts ...Option) (int, error) {
	if m == nil {
		return 0, ErrNilMaze
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := New(kind, maze.NewEditor(m, cfg.Sink), rng)
	if err != nil {
		return 0, err
	}
	steps, err := runner.Run(ctx, s, cfg.Run...)
	if err != nil {
		return steps, fmt.Errorf("generator: %s: %w", kind, err)
	}

	return steps, nil
}
