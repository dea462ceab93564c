package solver

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/runner"
)

// New returns the search for algorithm kind over the maze behind ed. When
// trace is set every expanded cell is marked with maze.GlyphDot.
func New(kind Kind, ed *maze.Editor, trace bool) (Search, error) {
	if ed == nil || ed.Maze() == nil {
		return nil, ErrNilMaze
	}
	switch kind {
	case DepthFirst:
		return newDepthFirst(ed, trace), nil
	case AStar:
		return newAStar(ed, trace), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Solve finds the path from entrance to exit with algorithm kind, then draws
// it with one arrow per step and a final down arrow on the exit cell.
// Glyphs left by a previous run are cleared first; each removal reaches the
// sink as maze.OverlayCleared.
func Solve(ctx context.Context, m *maze.Maze, kind Kind, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	ed := maze.NewEditor(m, cfg.Sink)
	ed.ClearGlyphs()

	s, err := New(kind, ed, cfg.Trace)
	if err != nil {
		return nil, err
	}
	ticks, err := runner.Run(ctx, s, cfg.Run...)
	if err != nil {
		return nil, fmt.Errorf("solver: %s: %w", kind, err)
	}
	path := s.Path()

	return &Result{
		Kind:     kind,
		Path:     path,
		Steps:    len(path) - 1,
		Expanded: s.Expanded(),
		Ticks:    ticks,
	}, nil
}
