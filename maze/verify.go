package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Verify checks that m is a perfect maze:
//
//  1. the entrance and exit openings are Open and the rest of the perimeter
//     is closed;
//  2. exactly rows·columns-1 internal walls are Open;
//  3. every cell is reachable from the entrance through open walls.
//
// With n cells, n-1 edges and full reachability the passages form a spanning
// tree. Any failure is reported as ErrNotPerfect with the failing condition.
// Complexity: O(rows×columns).
func (m *Maze) Verify() error {
	// 1. Border openings.
	entrance, exit := Point{X: 1, Y: 0}, Point{X: 2*m.columns - 1, Y: m.rows}
	if m.Unit(entrance).Kind != Open {
		return fmt.Errorf("%w: entrance is closed", ErrNotPerfect)
	}
	if m.Unit(exit).Kind != Open {
		return fmt.Errorf("%w: exit is closed", ErrNotPerfect)
	}
	for y := range m.frame {
		for x := range m.frame[y] {
			p := Point{X: x, Y: y}
			if p == entrance || p == exit || !m.perimeter(p) {
				continue
			}
			if m.frame[y][x].Kind == Open {
				return fmt.Errorf("%w: border opening at %v", ErrNotPerfect, p)
			}
		}
	}

	// 2. Edge count.
	cells := m.rows * m.columns
	if open := m.OpenCount(); open != cells-1 {
		return fmt.Errorf("%w: %d open walls, want %d", ErrNotPerfect, open, cells-1)
	}

	// 3. Reachability, breadth first from the entrance.
	seen := mapset.New[Cell]()
	seen.Put(m.Entrance())
	queue := []Cell{m.Entrance()}
	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		for n := range m.Neighbors(c) {
			if seen.Has(n) || !m.Passable(c, n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	if seen.Size() != cells {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, seen.Size(), cells)
	}

	return nil
}
