package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/maze"
)

// depthFirst is randomized depth-first carving. The stack holds the current
// corridor from the entrance to the cell being extended.
type depthFirst struct {
	ed      *maze.Editor
	rng     *rand.Rand
	stack   []maze.Cell
	visited mapset.Set[maze.Cell]
}

func newDepthFirst(ed *maze.Editor, rng *rand.Rand) *depthFirst {
	return &depthFirst{
		ed:      ed,
		rng:     rng,
		stack:   []maze.Cell{ed.Maze().Entrance()},
		visited: mapset.New[maze.Cell](),
	}
}

// Step extends the corridor by one cell or backtracks by one cell.
func (g *depthFirst) Step() (bool, error) {
	if len(g.stack) == 0 {
		return true, nil
	}
	m := g.ed.Maze()

	// 1. Enter the top cell.
	c := g.stack[len(g.stack)-1]
	g.visited.Put(c)
	g.ed.Mark(c, maze.GlyphDot)

	// 2. Try the directions in random order.
	dirs := maze.Directions()
	g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		n := c.Step(d)
		if !m.InBounds(n) || g.visited.Has(n) {
			continue
		}
		g.ed.Open(c, n)
		g.stack = append(g.stack, n)
		g.ed.Mark(c, d.Arrow())

		return false, nil
	}

	// 3. Dead end: backtrack.
	g.stack = g.stack[:len(g.stack)-1]
	g.ed.Unmark(c)

	return len(g.stack) == 0, nil
}
