package maze

import (
	"fmt"
	"iter"
)

// Maze is the authoritative wall state of a rows×columns grid.
// Its dimensions are fixed at construction; only unit kinds and glyphs change.
type Maze struct {
	rows, columns int
	frame         [][]Unit // frame[y][x]
}

// NewWalled returns a maze with every internal wall Blocking, the perimeter
// Border, and two openings: the entrance above cell (0,0) and the exit below
// cell (columns-1, rows-1).
// Returns ErrEmptyGrid if rows or columns is not positive.
// Complexity: O(rows×columns).
func NewWalled(rows, columns int) (*Maze, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, rows, columns)
	}
	m := newBlank(rows, columns)
	for y := range m.frame {
		for x := range m.frame[y] {
			if m.perimeter(Point{X: x, Y: y}) {
				m.frame[y][x].Kind = Border
			}
		}
	}
	m.frame[0][1].Kind = Open
	m.frame[rows][2*columns-1].Kind = Open

	return m, nil
}

// newBlank allocates a frame of Blocking units without any perimeter.
func newBlank(rows, columns int) *Maze {
	frame := make([][]Unit, rows+1)
	for y := range frame {
		frame[y] = make([]Unit, 2*columns+1)
	}

	return &Maze{rows: rows, columns: columns, frame: frame}
}

// Rows returns the number of cell rows.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the number of cell columns.
func (m *Maze) Columns() int { return m.columns }

// Width returns the frame width, 2·columns+1.
func (m *Maze) Width() int { return 2*m.columns + 1 }

// Height returns the frame height, rows+1.
func (m *Maze) Height() int { return m.rows + 1 }

// Entrance returns the cell below the top opening, always (0,0).
func (m *Maze) Entrance() Cell { return Cell{} }

// Exit returns the cell above the bottom opening, always (columns-1, rows-1).
func (m *Maze) Exit() Cell { return Cell{X: m.columns - 1, Y: m.rows - 1} }

// InBounds reports whether c lies inside the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.columns && c.Y >= 0 && c.Y < m.rows
}

// CellPoint returns the frame unit a cell sits on.
func (m *Maze) CellPoint(c Cell) Point {
	return Point{X: 2*c.X + 1, Y: c.Y + 1}
}

// Unit returns the frame unit at p. It panics if p is outside the frame.
func (m *Maze) Unit(p Point) Unit {
	m.mustContain(p)
	return m.frame[p.Y][p.X]
}

// SetUnit replaces the frame unit at p. It panics if p is outside the frame or
// if the change would turn a Border unit into something else.
func (m *Maze) SetUnit(p Point, u Unit) {
	m.mustContain(p)
	if m.frame[p.Y][p.X].Kind == Border && u.Kind != Border {
		panic(fmt.Sprintf("maze: border unit %v is immutable", p))
	}
	m.frame[p.Y][p.X] = u
}

// setGlyph changes only the overlay glyph at p.
func (m *Maze) setGlyph(p Point, g rune) {
	m.mustContain(p)
	m.frame[p.Y][p.X].Glyph = g
}

func (m *Maze) mustContain(p Point) {
	if p.X < 0 || p.X >= m.Width() || p.Y < 0 || p.Y >= m.Height() {
		panic(fmt.Sprintf("maze: frame point %v outside %dx%d frame", p, m.Width(), m.Height()))
	}
}

// perimeter reports whether p belongs to the outer frame: the top row, both
// side columns and the floors of the last cell row.
func (m *Maze) perimeter(p Point) bool {
	return p.Y == 0 || p.X == 0 || p.X == 2*m.columns || (p.Y == m.rows && p.X%2 == 1)
}

// separator reports whether p is a vertical unit between two cells of one row.
func (m *Maze) separator(p Point) bool {
	return p.Y >= 1 && p.X > 0 && p.X < 2*m.columns && p.X%2 == 0
}

// Neighbors yields the in-bounds cells orthogonally adjacent to c in the fixed
// order left, right, up, down. The sequence may be ranged over repeatedly.
func (m *Maze) Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range Directions() {
			n := c.Step(d)
			if !m.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// WallBetween returns the frame unit separating two 4-adjacent cells.
// It panics if a and b are not adjacent cells of this maze.
func (m *Maze) WallBetween(a, b Cell) Point {
	if _, ok := DirectionBetween(a, b); !ok || !m.InBounds(a) || !m.InBounds(b) {
		panic(fmt.Sprintf("maze: cells %v and %v are not adjacent", a, b))
	}

	return Point{X: a.X + b.X + 1, Y: min(a.Y, b.Y) + 1}
}

// Open turns the Blocking wall between a and b into an Open unit, keeping its
// overlay glyph, and returns the wall's frame point. It panics if the cells are
// not adjacent or the wall is not currently Blocking.
func (m *Maze) Open(a, b Cell) Point {
	p := m.WallBetween(a, b)
	u := m.frame[p.Y][p.X]
	if u.Kind != Blocking {
		panic(fmt.Sprintf("maze: wall %v between %v and %v is %s, not blocking", p, a, b, u.Kind))
	}
	m.frame[p.Y][p.X].Kind = Open

	return p
}

// Passable reports whether a and b are adjacent cells joined by an open wall.
func (m *Maze) Passable(a, b Cell) bool {
	if _, ok := DirectionBetween(a, b); !ok || !m.InBounds(a) || !m.InBounds(b) {
		return false
	}

	return m.Unit(m.WallBetween(a, b)).Kind == Open
}

// Separates returns the two cells divided by the internal wall at p.
// ok is false for perimeter units and for points outside the frame.
func (m *Maze) Separates(p Point) (a, b Cell, ok bool) {
	if p.Y < 1 || p.Y > m.rows || p.X <= 0 || p.X >= 2*m.columns {
		return Cell{}, Cell{}, false
	}
	if p.X%2 == 0 {
		return Cell{X: p.X/2 - 1, Y: p.Y - 1}, Cell{X: p.X / 2, Y: p.Y - 1}, true
	}
	if p.Y == m.rows {
		return Cell{}, Cell{}, false // bottom floor is perimeter
	}

	return Cell{X: (p.X - 1) / 2, Y: p.Y - 1}, Cell{X: (p.X - 1) / 2, Y: p.Y}, true
}

// InternalWalls lists every wall between two cells: first the floors between
// vertically adjacent cells, then the separators between horizontally adjacent
// cells, each column by column.
// The slice has rows·(columns-1) + columns·(rows-1) entries.
func (m *Maze) InternalWalls() []Point {
	walls := make([]Point, 0, m.rows*(m.columns-1)+m.columns*(m.rows-1))
	for x := 1; x < 2*m.columns; x += 2 {
		for y := 1; y < m.rows; y++ {
			walls = append(walls, Point{X: x, Y: y})
		}
	}
	for x := 2; x < 2*m.columns; x += 2 {
		for y := 1; y <= m.rows; y++ {
			walls = append(walls, Point{X: x, Y: y})
		}
	}

	return walls
}

// Passages returns the logical edge set: one Edge per open internal wall,
// in InternalWalls order.
func (m *Maze) Passages() []Edge {
	var edges []Edge
	for _, p := range m.InternalWalls() {
		if m.frame[p.Y][p.X].Kind != Open {
			continue
		}
		a, b, _ := m.Separates(p)
		edges = append(edges, Edge{A: a, B: b})
	}

	return edges
}

// OpenCount returns the number of open internal walls.
func (m *Maze) OpenCount() int {
	n := 0
	for _, p := range m.InternalWalls() {
		if m.frame[p.Y][p.X].Kind == Open {
			n++
		}
	}

	return n
}

// Shape tells how the unit at p is drawn. Blocking and Border units draw as a
// bar in separator and side positions and as a floor elsewhere. Open units draw
// blank, except an open separator flanked by two closed floors, which keeps the
// floor line running under the passage.
func (m *Maze) Shape(p Point) Shape {
	u := m.Unit(p)
	vertical := p.Y >= 1 && p.X%2 == 0
	if u.Kind != Open {
		if vertical {
			return ShapeBar
		}
		return ShapeFloor
	}
	if m.separator(p) && m.frame[p.Y][p.X-1].Kind != Open && m.frame[p.Y][p.X+1].Kind != Open {
		return ShapeFloor
	}

	return ShapeBlank
}

// Clone returns a deep copy of m, glyphs included.
func (m *Maze) Clone() *Maze {
	c := newBlank(m.rows, m.columns)
	for y := range m.frame {
		copy(c.frame[y], m.frame[y])
	}

	return c
}

// Equal reports whether m and other have the same dimensions and the same
// kind at every frame unit. Overlay glyphs are ignored.
func (m *Maze) Equal(other *Maze) bool {
	if other == nil || m.rows != other.rows || m.columns != other.columns {
		return false
	}
	for y := range m.frame {
		for x := range m.frame[y] {
			if m.frame[y][x].Kind != other.frame[y][x].Kind {
				return false
			}
		}
	}

	return true
}

// ClearGlyphs removes every overlay glyph without reporting it; use
// Editor.ClearGlyphs when a sink is watching.
func (m *Maze) ClearGlyphs() {
	for y := range m.frame {
		for x := range m.frame[y] {
			m.frame[y][x].Glyph = GlyphNone
		}
	}
}
