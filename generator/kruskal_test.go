package generator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/runner"
)

// TestKruskal_FixedOrder feeds the four walls of a 2×2 maze in the order
// top, left, right, bottom and expects exactly the last one to be skipped.
func TestKruskal_FixedOrder(t *testing.T) {
	m, err := maze.NewWalled(2, 2)
	require.NoError(t, err)
	var rec maze.Recorder
	g := newKruskal(maze.NewEditor(m, &rec), rand.New(rand.NewSource(1)))

	top := m.WallBetween(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0})
	left := m.WallBetween(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 0, Y: 1})
	right := m.WallBetween(maze.Cell{X: 1, Y: 0}, maze.Cell{X: 1, Y: 1})
	bottom := m.WallBetween(maze.Cell{X: 0, Y: 1}, maze.Cell{X: 1, Y: 1})
	require.ElementsMatch(t, []maze.Point{top, left, right, bottom}, g.walls)
	g.walls = []maze.Point{bottom, right, left, top} // consumed from the end

	steps, err := runner.Run(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, 4, steps)
	assert.Equal(t, 1, g.Skipped())
	assert.Equal(t, 3, m.OpenCount())
	assert.Equal(t, maze.Blocking, m.Unit(bottom).Kind)
	assert.Equal(t, []maze.Event{
		{Kind: maze.WallOpened, At: top},
		{Kind: maze.WallOpened, At: left},
		{Kind: maze.WallOpened, At: right},
	}, rec.Events)
	assert.NoError(t, m.Verify())
}

// TestKruskal_SkipsOnTwoByTwo checks that any shuffle of a 2×2 maze rejects
// exactly one wall.
func TestKruskal_SkipsOnTwoByTwo(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		m, err := maze.NewWalled(2, 2)
		require.NoError(t, err)
		g := newKruskal(maze.NewEditor(m, nil), rand.New(rand.NewSource(seed)))
		_, err = runner.Run(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, 1, g.Skipped(), "seed %d", seed)
		assert.Equal(t, 3, m.OpenCount(), "seed %d", seed)
	}
}

// TestKruskal_SkipCount checks that skipped plus opened equals all walls.
func TestKruskal_SkipCount(t *testing.T) {
	m, err := maze.NewWalled(9, 11)
	require.NoError(t, err)
	g := newKruskal(maze.NewEditor(m, nil), rand.New(rand.NewSource(99)))
	total := len(g.walls)

	_, err = runner.Run(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, total, g.Skipped()+m.OpenCount())
	assert.Equal(t, 9*11-1, m.OpenCount())
}
