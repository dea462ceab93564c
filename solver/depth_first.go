package solver

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/maze"
)

// depthFirst is depth-first backtracking from the entrance. Neighbours are
// tried in the fixed order left, right, up, down and filtered by Passable.
// When the exit is on top of the stack, the stack is the path.
type depthFirst struct {
	ed       *maze.Editor
	trace    bool
	stack    []maze.Cell
	visited  mapset.Set[maze.Cell]
	expanded int
	path     []maze.Cell
	drawing  *pathTrace
}

func newDepthFirst(ed *maze.Editor, trace bool) *depthFirst {
	return &depthFirst{
		ed:      ed,
		trace:   trace,
		stack:   []maze.Cell{ed.Maze().Entrance()},
		visited: mapset.New[maze.Cell](),
	}
}

// Step advances the search by one push or pop, or draws one arrow of the
// path once the exit has been reached.
func (s *depthFirst) Step() (bool, error) {
	if s.drawing != nil {
		return s.drawing.step(s.ed), nil
	}
	if len(s.stack) == 0 {
		return false, fmt.Errorf("%w: depth-first search exhausted after %d cells", ErrNoPath, s.expanded)
	}
	m := s.ed.Maze()

	// 1. Visit the top cell.
	c := s.stack[len(s.stack)-1]
	if !s.visited.Has(c) {
		s.visited.Put(c)
		s.expanded++
		if s.trace {
			s.ed.Mark(c, maze.GlyphDot)
		}
	}

	// 2. Exit reached: freeze the path and start drawing it.
	if c == m.Exit() {
		s.path = slices.Clone(s.stack)
		s.drawing = &pathTrace{path: s.path}

		return false, nil
	}

	// 3. Descend into the first open, unvisited neighbour.
	for n := range m.Neighbors(c) {
		if s.visited.Has(n) || !m.Passable(c, n) {
			continue
		}
		s.stack = append(s.stack, n)

		return false, nil
	}

	// 4. Dead end.
	s.stack = s.stack[:len(s.stack)-1]

	return false, nil
}

func (s *depthFirst) Path() []maze.Cell { return s.path }

func (s *depthFirst) Expanded() int { return s.expanded }
