package maze

// Stats summarizes the shape of a maze's passages.
type Stats struct {
	Cells     int // rows·columns
	DeadEnds  int // cells with exactly one open side
	Corridors int // cells with exactly two open sides
	Junctions int // cells with three or four open sides
	// Solution is the number of moves from entrance to exit, -1 when the exit
	// is unreachable.
	Solution int
	// Longest is the number of moves on the longest shortest path between any
	// two cells reachable from the entrance. On a perfect maze this is the
	// diameter of the spanning tree.
	Longest int
}

// Stats walks the open passages and returns their summary.
//
// Time:   O(rows·columns), two breadth-first passes.
// Memory: O(rows·columns) for distances.
func (m *Maze) Stats() Stats {
	s := Stats{Cells: m.rows * m.columns}

	// 1. Degree classes.
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.columns; x++ {
			c := Cell{X: x, Y: y}
			deg := 0
			for n := range m.Neighbors(c) {
				if m.Passable(c, n) {
					deg++
				}
			}
			switch {
			case deg == 1:
				s.DeadEnds++
			case deg == 2:
				s.Corridors++
			case deg >= 3:
				s.Junctions++
			}
		}
	}

	// 2. Distances from the entrance give the solution length and the far end
	// of one longest path; a second pass from there gives its length.
	dist, far := m.distances(m.Entrance())
	s.Solution = dist[m.index(m.Exit())]
	back, far2 := m.distances(far)
	s.Longest = back[m.index(far2)]

	return s
}

// index numbers cells row-major.
func (m *Maze) index(c Cell) int { return c.Y*m.columns + c.X }

// distances runs a breadth-first search over open passages from src. It
// returns the move count to every cell (-1 when unreachable) and the
// reachable cell farthest from src, earliest in visiting order on ties.
func (m *Maze) distances(src Cell) ([]int, Cell) {
	dist := make([]int, m.rows*m.columns)
	for i := range dist {
		dist[i] = -1
	}
	dist[m.index(src)] = 0
	queue := []Cell{src}
	far := src

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		du := dist[m.index(u)]
		if du > dist[m.index(far)] {
			far = u
		}
		for v := range m.Neighbors(u) {
			vi := m.index(v)
			if dist[vi] >= 0 || !m.Passable(u, v) {
				continue
			}
			dist[vi] = du + 1
			queue = append(queue, v)
		}
	}

	return dist, far
}

