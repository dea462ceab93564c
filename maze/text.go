package maze

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Characters of the text form.
const (
	charFloor = '_'
	charBar   = '|'
	charBlank = ' '
)

// Parse reads a maze in text form:
//
//	'_' horizontal wall, '|' vertical wall, ' ' open unit.
//
// All lines must have the same odd width of at least three characters and
// there must be at least two lines. A trailing newline and carriage returns
// are tolerated. Perimeter walls become Border; interior walls become
// Blocking. In a separator position '_' reads as open, because the text form
// draws an open separator with the floor line running through it.
//
// Malformed input is reported as *ParseError.
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading text form: %w", err)
	}

	// 1. Shape checks.
	if len(lines) < 2 {
		return nil, &ParseError{Line: len(lines) + 1, Column: 1, Err: ErrTooFewLines}
	}
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, &ParseError{Line: i + 1, Column: min(len(line), width) + 1, Err: ErrUnevenLines}
		}
	}
	if width < 3 {
		return nil, &ParseError{Line: 1, Column: width + 1, Err: ErrTooNarrow}
	}
	if width%2 == 0 {
		return nil, &ParseError{Line: 1, Column: width, Err: ErrEvenWidth}
	}

	// 2. Units.
	m := newBlank(len(lines)-1, (width-1)/2)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			ch := line[x]
			if ch != charFloor && ch != charBar && ch != charBlank {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Err: fmt.Errorf("%w %q", ErrBadCharacter, rune(ch))}
			}
			m.frame[y][x].Kind = m.kindOf(Point{X: x, Y: y}, ch)
		}
	}

	return m, nil
}

// ParseFile opens path and parses its contents with Parse.
func ParseFile(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("maze: parse %s: %w", path, err)
	}

	return m, nil
}

// kindOf maps one text character at p to a unit kind.
func (m *Maze) kindOf(p Point, ch byte) Kind {
	switch {
	case ch == charBlank:
		return Open
	case m.perimeter(p):
		return Border
	case m.separator(p) && ch == charFloor:
		return Open
	default:
		return Blocking
	}
}

// WriteTo writes m in text form, one line per frame row, each terminated by a
// newline. Overlay glyphs are not part of the text form.
func (m *Maze) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	line := make([]byte, m.Width()+1)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			switch m.Shape(Point{X: x, Y: y}) {
			case ShapeFloor:
				line[x] = charFloor
			case ShapeBar:
				line[x] = charBar
			default:
				line[x] = charBlank
			}
		}
		line[m.Width()] = '\n'
		k, err := bw.Write(line)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// String returns the text form of m.
func (m *Maze) String() string {
	var buf bytes.Buffer
	_, _ = m.WriteTo(&buf)

	return buf.String()
}
