package generator_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/runner"
)

var sizes = [][2]int{{1, 1}, {1, 6}, {6, 1}, {2, 2}, {3, 3}, {7, 9}, {20, 13}}

// generate carves a fresh rows×columns maze with a fixed seed.
func generate(t testing.TB, kind generator.Kind, rows, columns int, seed int64, opts ...generator.Option) *maze.Maze {
	t.Helper()
	m, err := maze.NewWalled(rows, columns)
	require.NoError(t, err)
	_, err = generator.Generate(context.Background(), m, kind, rand.New(rand.NewSource(seed)), opts...)
	require.NoError(t, err)

	return m
}

//----------------------------------------------------------------------------//
// Spanning-tree properties
//----------------------------------------------------------------------------//

// TestGenerate_Perfect checks every algorithm on every size yields a spanning
// tree with intact border openings and no glyphs left behind.
func TestGenerate_Perfect(t *testing.T) {
	for _, kind := range generator.Kinds() {
		for _, sz := range sizes {
			name := fmt.Sprintf("%s/%dx%d", kind, sz[0], sz[1])
			t.Run(name, func(t *testing.T) {
				for seed := int64(1); seed <= 5; seed++ {
					m := generate(t, kind, sz[0], sz[1], seed)

					require.NoError(t, m.Verify())
					assert.Equal(t, sz[0]*sz[1]-1, m.OpenCount())
					assert.Len(t, m.Passages(), sz[0]*sz[1]-1)
					assert.Equal(t, maze.Open, m.Unit(maze.Point{X: 1, Y: 0}).Kind)
					assert.Equal(t, maze.Open, m.Unit(maze.Point{X: 2*sz[1] - 1, Y: sz[0]}).Kind)
					for y := 0; y < m.Height(); y++ {
						for x := 0; x < m.Width(); x++ {
							assert.Equal(t, maze.GlyphNone, m.Unit(maze.Point{X: x, Y: y}).Glyph)
						}
					}
				}
			})
		}
	}
}

// TestGenerate_Deterministic checks that a fixed seed reproduces the maze.
func TestGenerate_Deterministic(t *testing.T) {
	for _, kind := range generator.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			a := generate(t, kind, 12, 17, 42)
			b := generate(t, kind, 12, 17, 42)
			assert.True(t, a.Equal(b))
			assert.Equal(t, a.String(), b.String())
		})
	}
}

// TestGenerate_TextRoundTrip checks every generated maze survives writing
// and re-parsing its text form unchanged.
func TestGenerate_TextRoundTrip(t *testing.T) {
	for _, kind := range generator.Kinds() {
		for _, sz := range sizes {
			t.Run(fmt.Sprintf("%s/%dx%d", kind, sz[0], sz[1]), func(t *testing.T) {
				for seed := int64(1); seed <= 10; seed++ {
					m := generate(t, kind, sz[0], sz[1], seed)
					text := m.String()

					back, err := maze.Parse(strings.NewReader(text))
					require.NoError(t, err)
					assert.True(t, m.Equal(back), "seed %d:\n%s\n%s", seed, text, back)
					assert.Equal(t, text, back.String())
					assert.NoError(t, back.Verify())
				}
			})
		}
	}
}

// TestGenerate_Events checks the event stream agrees with the final maze.
func TestGenerate_Events(t *testing.T) {
	for _, kind := range generator.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			m, err := maze.NewWalled(6, 8)
			require.NoError(t, err)

			var rec maze.Recorder
			applied := maze.SinkFunc(func(e maze.Event) {
				if e.Kind == maze.WallOpened {
					assert.Equal(t, maze.Open, m.Unit(e.At).Kind)
				}
			})
			_, err = generator.Generate(context.Background(), m, kind, rand.New(rand.NewSource(7)),
				generator.WithSink(maze.Tee(applied, &rec)))
			require.NoError(t, err)

			assert.Equal(t, 6*8-1, rec.Count(maze.WallOpened))
			assert.Equal(t, rec.Count(maze.OverlaySet) > 0, kind != generator.Kruskal)
			opened := make(map[maze.Point]bool)
			for _, e := range rec.Events {
				if e.Kind != maze.WallOpened {
					continue
				}
				assert.False(t, opened[e.At], "wall %v opened twice", e.At)
				opened[e.At] = true
				_, _, ok := m.Separates(e.At)
				assert.True(t, ok, "opened %v is not an internal wall", e.At)
			}
		})
	}
}

// TestGenerate_Steps checks the step counts implied by each algorithm.
func TestGenerate_Steps(t *testing.T) {
	const rows, columns = 5, 6
	n := rows * columns

	m, _ := maze.NewWalled(rows, columns)
	steps, err := generator.Generate(context.Background(), m, generator.DepthFirst, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	// One step per carve and one per pop.
	assert.Equal(t, (n-1)+n, steps)

	m, _ = maze.NewWalled(rows, columns)
	steps, err = generator.Generate(context.Background(), m, generator.Kruskal, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, len(m.InternalWalls()), steps)
}

//----------------------------------------------------------------------------//
// Validation and dispatch
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	m, err := maze.NewWalled(2, 2)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	_, err = generator.New(generator.Kind(9), maze.NewEditor(m, nil), rng)
	assert.ErrorIs(t, err, generator.ErrUnknownKind)

	_, err = generator.New(generator.DepthFirst, maze.NewEditor(m, nil), nil)
	assert.ErrorIs(t, err, generator.ErrNilRand)

	_, err = generator.New(generator.DepthFirst, nil, rng)
	assert.ErrorIs(t, err, generator.ErrNilMaze)

	_, err = generator.Generate(context.Background(), nil, generator.Kruskal, rng)
	assert.ErrorIs(t, err, generator.ErrNilMaze)

	m.Open(maze.Cell{}, maze.Cell{X: 1})
	_, err = generator.New(generator.Kruskal, maze.NewEditor(m, nil), rng)
	assert.ErrorIs(t, err, generator.ErrNotWalled)
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want generator.Kind
	}{
		{"depth_first_search", generator.DepthFirst},
		{"Breadth-First-Search", generator.BreadthFirst},
		{" kruskal ", generator.Kruskal},
	}
	for _, tc := range cases {
		got, err := generator.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}

	_, err := generator.ParseKind("prim")
	assert.ErrorIs(t, err, generator.ErrUnknownKind)
	assert.Equal(t, "generator(7)", generator.Kind(7).String())
}

func mustParse(t *testing.T, s string) generator.Kind {
	t.Helper()
	k, err := generator.ParseKind(s)
	require.NoError(t, err)

	return k
}

// TestGenerate_Cancel interrupts carving between steps.
func TestGenerate_Cancel(t *testing.T) {
	m, err := maze.NewWalled(10, 10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	steps, err := generator.Generate(ctx, m, generator.DepthFirst, rand.New(rand.NewSource(1)),
		generator.WithRunOptions(runner.WithOnStep(func(n int) error {
			if n == 10 {
				cancel()
			}
			return nil
		})))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, steps)
	assert.Positive(t, m.OpenCount())
	assert.ErrorIs(t, m.Verify(), maze.ErrNotPerfect)
}
