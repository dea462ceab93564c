package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/maze"
)

// breadthFirst grows the tree from a randomly chosen frontier cell: after each
// carve the whole stack is shuffled. A cell is marked seen as soon as it is
// pushed, so a cell waiting on the stack is never linked twice.
type breadthFirst struct {
	ed       *maze.Editor
	rng      *rand.Rand
	frontier []maze.Cell
	seen     mapset.Set[maze.Cell]
}

func newBreadthFirst(ed *maze.Editor, rng *rand.Rand) *breadthFirst {
	start := ed.Maze().Entrance()
	seen := mapset.New[maze.Cell]()
	seen.Put(start)

	return &breadthFirst{
		ed:       ed,
		rng:      rng,
		frontier: []maze.Cell{start},
		seen:     seen,
	}
}

// Step carves from the top of the frontier into one unseen neighbour, or pops
// the top when it has none.
func (g *breadthFirst) Step() (bool, error) {
	if len(g.frontier) == 0 {
		return true, nil
	}
	m := g.ed.Maze()

	// 1. Enter the top cell and clear its marker.
	c := g.frontier[len(g.frontier)-1]
	g.ed.Unmark(c)

	// 2. Try the directions in random order.
	dirs := maze.Directions()
	g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		n := c.Step(d)
		if !m.InBounds(n) || g.seen.Has(n) {
			continue
		}
		g.seen.Put(n)
		g.frontier = append(g.frontier, n)
		g.ed.Open(c, n)
		g.ed.Mark(n, maze.GlyphDot)

		// 3. Reshuffle the whole frontier.
		g.rng.Shuffle(len(g.frontier), func(i, j int) {
			g.frontier[i], g.frontier[j] = g.frontier[j], g.frontier[i]
		})

		return false, nil
	}

	// 4. Exhausted cell: drop it.
	g.frontier = g.frontier[:len(g.frontier)-1]

	return len(g.frontier) == 0, nil
}
