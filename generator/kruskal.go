package generator

import (
	"math/rand"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/labyrinth/maze"
)

// kruskal is randomized Kruskal: internal walls are consumed from a shuffled
// list, and a wall is opened only when it joins two different disjoint sets.
type kruskal struct {
	ed      *maze.Editor
	walls   []maze.Point        // remaining walls; consumed from the end
	sets    []*disjoint.Element // one element per cell, row-major
	columns int
	skipped int
}

func newKruskal(ed *maze.Editor, rng *rand.Rand) *kruskal {
	m := ed.Maze()

	// 1. One singleton set per cell.
	sets := make([]*disjoint.Element, m.Rows()*m.Columns())
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	// 2. Every internal wall, shuffled.
	walls := m.InternalWalls()
	rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })

	return &kruskal{ed: ed, walls: walls, sets: sets, columns: m.Columns()}
}

// Step consumes one wall, opening it unless that would close a cycle.
func (g *kruskal) Step() (bool, error) {
	if len(g.walls) == 0 {
		return true, nil
	}

	// 1. Pop the next wall and find the two cells it separates.
	p := g.walls[len(g.walls)-1]
	g.walls = g.walls[:len(g.walls)-1]
	a, b, _ := g.ed.Maze().Separates(p)

	// 2. Same set: opening would create a cycle.
	ea, eb := g.sets[a.Y*g.columns+a.X], g.sets[b.Y*g.columns+b.X]
	if ea.Find() == eb.Find() {
		g.skipped++
		return len(g.walls) == 0, nil
	}

	// 3. Merge and carve.
	disjoint.Union(ea, eb)
	g.ed.Open(a, b)

	return len(g.walls) == 0, nil
}

// Skipped reports how many walls were rejected because they would close a cycle.
func (g *kruskal) Skipped() int { return g.skipped }
