package solver

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/maze"
)

// frontierItem is a cell queued for expansion with its path cost g, its
// heuristic h and an insertion counter used as the final tie-break.
type frontierItem struct {
	cell maze.Cell
	g, h int
	seq  int
}

// lessItem orders by f = g+h, then by smaller h (closer to the exit), then by
// insertion order, so runs are deterministic.
func lessItem(a, b frontierItem) bool {
	if fa, fb := a.g+a.h, b.g+b.h; fa != fb {
		return fa < fb
	}
	if a.h != b.h {
		return a.h < b.h
	}

	return a.seq < b.seq
}

// aStar is A* over the cell graph with unit edge costs and the Manhattan
// distance to the exit, which never overestimates on a grid.
type aStar struct {
	ed       *maze.Editor
	trace    bool
	open     *heap.Heap[frontierItem]
	closed   mapset.Set[maze.Cell]
	cost     map[maze.Cell]int
	parent   map[maze.Cell]maze.Cell
	seq      int
	expanded int
	path     []maze.Cell
	drawing  *pathTrace
}

func newAStar(ed *maze.Editor, trace bool) *aStar {
	s := &aStar{
		ed:     ed,
		trace:  trace,
		open:   heap.New(lessItem),
		closed: mapset.New[maze.Cell](),
		cost:   make(map[maze.Cell]int),
		parent: make(map[maze.Cell]maze.Cell),
	}
	start := ed.Maze().Entrance()
	s.cost[start] = 0
	s.push(start, 0)

	return s
}

func (s *aStar) push(c maze.Cell, g int) {
	s.open.Push(frontierItem{cell: c, g: g, h: s.heuristic(c), seq: s.seq})
	s.seq++
}

func (s *aStar) heuristic(c maze.Cell) int {
	exit := s.ed.Maze().Exit()

	return abs(exit.X-c.X) + abs(exit.Y-c.Y)
}

// Step expands one cell, or draws one arrow of the path once the exit has
// been expanded.
func (s *aStar) Step() (bool, error) {
	if s.drawing != nil {
		return s.drawing.step(s.ed), nil
	}
	m := s.ed.Maze()

	// 1. Pop the best frontier entry, skipping stale duplicates.
	var cur frontierItem
	for {
		it, ok := s.open.Pop()
		if !ok {
			return false, fmt.Errorf("%w: A* exhausted after %d cells", ErrNoPath, s.expanded)
		}
		if !s.closed.Has(it.cell) {
			cur = it

			break
		}
	}
	s.closed.Put(cur.cell)
	s.expanded++
	if s.trace {
		s.ed.Mark(cur.cell, maze.GlyphDot)
	}

	// 2. Exit expanded: rebuild the path from the parent links.
	if cur.cell == m.Exit() {
		s.path = s.reconstruct(cur.cell)
		s.drawing = &pathTrace{path: s.path}

		return false, nil
	}

	// 3. Relax passable neighbours.
	for n := range m.Neighbors(cur.cell) {
		if s.closed.Has(n) || !m.Passable(cur.cell, n) {
			continue
		}
		g := cur.g + 1
		if old, seen := s.cost[n]; seen && old <= g {
			continue
		}
		s.cost[n] = g
		s.parent[n] = cur.cell
		s.push(n, g)
	}

	return false, nil
}

func (s *aStar) reconstruct(end maze.Cell) []maze.Cell {
	start := s.ed.Maze().Entrance()
	path := []maze.Cell{end}
	for c := end; c != start; {
		c = s.parent[c]
		path = append(path, c)
	}
	slices.Reverse(path)

	return path
}

func (s *aStar) Path() []maze.Cell { return s.path }

func (s *aStar) Expanded() int { return s.expanded }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
