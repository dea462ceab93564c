package generator_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
)

// benchmarkGenerate carves a 100×100 maze per iteration.
func benchmarkGenerate(b *testing.B, kind generator.Kind) {
	rng := rand.New(rand.NewSource(42))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := maze.NewWalled(100, 100)
		if _, err := generator.Generate(context.Background(), m, kind, rng); err != nil {
			b.Fatalf("Generate: %v", err)
		}
	}
}

func BenchmarkDepthFirst(b *testing.B)   { benchmarkGenerate(b, generator.DepthFirst) }
func BenchmarkBreadthFirst(b *testing.B) { benchmarkGenerate(b, generator.BreadthFirst) }
func BenchmarkKruskal(b *testing.B)      { benchmarkGenerate(b, generator.Kruskal) }
