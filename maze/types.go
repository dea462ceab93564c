package maze

import "fmt"

// Cell identifies one grid position a path can occupy.
type Cell struct {
	X, Y int // column and row, zero based
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the cell one move away in direction d. The result may lie
// outside the grid; callers check it with Maze.InBounds.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Offset()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Point addresses one unit of the frame matrix.
type Point struct {
	X, Y int // frame column and frame row
}

// String renders the point as "[x,y]".
func (p Point) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}

// Kind is the passability state of a frame unit.
type Kind uint8

const (
	// Blocking is an impassable wall that carving may open.
	Blocking Kind = iota
	// Open is a passable unit.
	Open
	// Border is the immutable impassable perimeter.
	Border
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Blocking:
		return "blocking"
	case Open:
		return "open"
	case Border:
		return "border"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Unit is one element of the frame matrix.
type Unit struct {
	Kind  Kind
	Glyph rune // overlay character, 0 when none
}

// Shape describes how a unit is drawn in the text form and on a terminal.
type Shape uint8

const (
	// ShapeBlank draws as a space.
	ShapeBlank Shape = iota
	// ShapeFloor draws as an underscore (or an underlined glyph).
	ShapeFloor
	// ShapeBar draws as a vertical bar.
	ShapeBar
)

// Overlay glyphs used by generators and solvers.
const (
	GlyphNone  rune = 0
	GlyphDot   rune = '·'
	GlyphLeft  rune = '←'
	GlyphRight rune = '→'
	GlyphUp    rune = '↑'
	GlyphDown  rune = '↓'
)

// Direction is one of the four orthogonal moves between cells.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in the fixed order left, right, up, down.
// It returns a fresh array so callers may shuffle it in place.
func Directions() [4]Direction {
	return [4]Direction{Left, Right, Up, Down}
}

// Offset returns the cell delta (dx, dy) of d.
func (d Direction) Offset() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		panic(fmt.Sprintf("maze: invalid direction %d", uint8(d)))
	}
}

// Arrow returns the overlay glyph pointing in direction d.
func (d Direction) Arrow() rune {
	switch d {
	case Left:
		return GlyphLeft
	case Right:
		return GlyphRight
	case Up:
		return GlyphUp
	default:
		return GlyphDown
	}
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// DirectionBetween returns the direction leading from a to b.
// ok is false when a and b are not 4-adjacent.
func DirectionBetween(a, b Cell) (d Direction, ok bool) {
	switch {
	case b.X == a.X+1 && b.Y == a.Y:
		return Right, true
	case b.X == a.X-1 && b.Y == a.Y:
		return Left, true
	case b.Y == a.Y+1 && b.X == a.X:
		return Down, true
	case b.Y == a.Y-1 && b.X == a.X:
		return Up, true
	default:
		return 0, false
	}
}

// Edge is an unordered pair of 4-adjacent cells joined by an open wall.
type Edge struct {
	A, B Cell
}
