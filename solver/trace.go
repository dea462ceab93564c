package solver

import "github.com/katalvlaran/labyrinth/maze"

// pathTrace draws a found path one arrow per step: each cell points toward
// its successor, and the exit cell points down through the exit opening.
type pathTrace struct {
	path []maze.Cell
	next int
}

// step draws one arrow and reports whether the trace is complete.
func (t *pathTrace) step(ed *maze.Editor) bool {
	if t.next >= len(t.path)-1 {
		ed.Mark(t.path[len(t.path)-1], maze.GlyphDown)
		t.next = len(t.path)

		return true
	}
	c, n := t.path[t.next], t.path[t.next+1]
	d, _ := maze.DirectionBetween(c, n)
	ed.Mark(c, d.Arrow())
	t.next++

	return false
}
