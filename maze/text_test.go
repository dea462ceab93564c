package maze_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
)

// TestParse_Errors checks every malformed-input class and its position.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		err          error
		line, column int
	}{
		{"Empty", "", maze.ErrTooFewLines, 1, 1},
		{"OneLine", "_ _\n", maze.ErrTooFewLines, 2, 1},
		{"Uneven", "_ ___\n|   |\n|_|\n", maze.ErrUnevenLines, 3, 4},
		{"Narrow", "_\n|\n", maze.ErrTooNarrow, 1, 2},
		{"EvenWidth", "_ __\n|  |\n", maze.ErrEvenWidth, 1, 4},
		{"BadCharacter", "_ ___\n| x |\n", maze.ErrBadCharacter, 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := maze.Parse(strings.NewReader(tc.input))
			assert.Nil(t, m)
			require.ErrorIs(t, err, tc.err)

			var pe *maze.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.column, pe.Column)
		})
	}
}

// TestParse_Known reads a hand-written 2×2 maze.
func TestParse_Known(t *testing.T) {
	input := "" +
		"_ ___\r\n" +
		"|   |\r\n" +
		"|_| |\r\n"
	m, err := maze.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Columns())
	assert.True(t, m.Passable(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0}))
	assert.True(t, m.Passable(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 0, Y: 1}))
	assert.True(t, m.Passable(maze.Cell{X: 1, Y: 0}, maze.Cell{X: 1, Y: 1}))
	assert.False(t, m.Passable(maze.Cell{X: 0, Y: 1}, maze.Cell{X: 1, Y: 1}))
	assert.Equal(t, maze.Border, m.Unit(maze.Point{X: 0, Y: 1}).Kind)
	assert.Equal(t, maze.Border, m.Unit(maze.Point{X: 1, Y: 2}).Kind)
	assert.NoError(t, m.Verify())
}

// TestParse_UnderscoreSeparator reads '_' in a separator slot as a passage.
func TestParse_UnderscoreSeparator(t *testing.T) {
	input := "" +
		"_ ___\n" +
		"|___|\n" +
		"|_  |\n"
	m, err := maze.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.True(t, m.Passable(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0}))
	assert.True(t, m.Passable(maze.Cell{X: 0, Y: 1}, maze.Cell{X: 1, Y: 1}))
	assert.False(t, m.Passable(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 0, Y: 1}))
	assert.Equal(t, input, m.String())
}

// TestRoundTrip writes a carved maze and parses it back.
func TestRoundTrip(t *testing.T) {
	m := carve(t, 3, 4,
		[2]maze.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}},
		[2]maze.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}},
		[2]maze.Cell{{X: 2, Y: 0}, {X: 3, Y: 0}},
		[2]maze.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}},
		[2]maze.Cell{{X: 0, Y: 1}, {X: 1, Y: 1}},
		[2]maze.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}},
		[2]maze.Cell{{X: 1, Y: 2}, {X: 0, Y: 2}},
		[2]maze.Cell{{X: 3, Y: 0}, {X: 3, Y: 1}},
		[2]maze.Cell{{X: 3, Y: 1}, {X: 2, Y: 1}},
		[2]maze.Cell{{X: 3, Y: 1}, {X: 3, Y: 2}},
		[2]maze.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}},
	)
	require.NoError(t, m.Verify())

	back, err := maze.Parse(strings.NewReader(m.String()))
	require.NoError(t, err)
	assert.True(t, m.Equal(back), "\n%s\n%s", m, back)
	assert.Equal(t, m.String(), back.String())
}

// TestParseFile reads from disk and reports positions through the wrapper.
func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("_ _\n| |\n"), 0o600))
	m, err := maze.ParseFile(good)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("_ _\n|#|\n"), 0o600))
	_, err = maze.ParseFile(bad)
	var pe *maze.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)

	_, err = maze.ParseFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
