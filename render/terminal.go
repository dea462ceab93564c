package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// ANSI control sequences.
const (
	escHideCursor = "\033[?25l"
	escShowCursor = "\033[?25h"
	escClear      = "\033[2J"
	escHome       = "\033[H"
	escUnderline  = "\033[4m"
	escReset      = "\033[0m"
)

const barRune = '│'

// Terminal paints a maze on an ANSI terminal and keeps it current as events
// arrive. The first write error is kept and returned by Err, Draw and Finish;
// later writes are skipped.
type Terminal struct {
	w   *bufio.Writer
	m   *maze.Maze
	err error
}

// NewTerminal returns a Terminal drawing m onto w.
func NewTerminal(w io.Writer, m *maze.Maze) *Terminal {
	return &Terminal{w: bufio.NewWriter(w), m: m}
}

// Draw hides the cursor, clears the screen and prints the whole frame.
func (t *Terminal) Draw() error {
	t.write(escHideCursor + escHome + escClear)
	for y := 0; y < t.m.Height(); y++ {
		for x := 0; x < t.m.Width(); x++ {
			t.write(cellString(t.m, maze.Point{X: x, Y: y}))
		}
		t.write("\n")
	}
	t.flush()

	return t.err
}

// Emit reprints the unit an event touched. Opening a floor may change how the
// separators beside it are drawn, so those are reprinted too.
func (t *Terminal) Emit(e maze.Event) {
	t.redraw(e.At)
	if e.Kind == maze.WallOpened && e.At.Y >= 1 && e.At.X%2 == 1 {
		for _, x := range [2]int{e.At.X - 1, e.At.X + 1} {
			if x >= 0 && x < t.m.Width() {
				t.redraw(maze.Point{X: x, Y: e.At.Y})
			}
		}
	}
	t.flush()
}

// Finish moves the cursor below the maze and shows it again.
func (t *Terminal) Finish() error {
	t.moveTo(maze.Point{X: 0, Y: t.m.Height()})
	t.write(escShowCursor)
	t.flush()

	return t.err
}

// Err returns the first write error, if any.
func (t *Terminal) Err() error { return t.err }

func (t *Terminal) redraw(p maze.Point) {
	t.moveTo(p)
	t.write(cellString(t.m, p))
}

// moveTo positions the cursor on frame unit p; terminal rows and columns
// are 1-based.
func (t *Terminal) moveTo(p maze.Point) {
	t.write(fmt.Sprintf("\033[%d;%dH", p.Y+1, p.X+1))
}

func (t *Terminal) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = t.w.WriteString(s)
}

func (t *Terminal) flush() {
	if t.err != nil {
		return
	}
	t.err = t.w.Flush()
}

// cellString returns the escaped terminal form of the unit at p.
func cellString(m *maze.Maze, p maze.Point) string {
	u := m.Unit(p)
	ch := ' '
	if u.Glyph != maze.GlyphNone {
		ch = u.Glyph
	}
	switch m.Shape(p) {
	case maze.ShapeFloor:
		return escUnderline + string(ch) + escReset
	case maze.ShapeBar:
		return string(barRune)
	default:
		return string(ch)
	}
}

// Frame returns m as plain text, one line per frame row, with overlay glyphs
// drawn over the walls they stand on.
func Frame(m *maze.Maze) string {
	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			u := m.Unit(p)
			switch {
			case u.Glyph != maze.GlyphNone:
				b.WriteRune(u.Glyph)
			case m.Shape(p) == maze.ShapeFloor:
				b.WriteByte('_')
			case m.Shape(p) == maze.ShapeBar:
				b.WriteByte('|')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
