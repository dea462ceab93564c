package solver_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/solver"
)

// ExampleSolve finds the route through a hand-carved 2×3 maze.
func ExampleSolve() {
	m, _ := maze.NewWalled(2, 3)
	m.Open(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0})
	m.Open(maze.Cell{X: 1, Y: 0}, maze.Cell{X: 2, Y: 0})
	m.Open(maze.Cell{X: 2, Y: 0}, maze.Cell{X: 2, Y: 1})
	m.Open(maze.Cell{X: 0, Y: 1}, maze.Cell{X: 1, Y: 1})
	m.Open(maze.Cell{X: 1, Y: 1}, maze.Cell{X: 2, Y: 1})

	res, err := solver.Solve(context.Background(), m, solver.AStar)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("steps:", res.Steps)
	// Output:
	// path: [(0,0) (1,0) (2,0) (2,1)]
	// steps: 3
}

// ExampleSolve_agree shows both searches return the same route on a
// generated maze.
func ExampleSolve_agree() {
	m, _ := maze.NewWalled(10, 10)
	_, _ = generator.Generate(context.Background(), m, generator.DepthFirst, rand.New(rand.NewSource(7)))

	a, _ := solver.Solve(context.Background(), m, solver.DepthFirst)
	b, _ := solver.Solve(context.Background(), m, solver.AStar)
	fmt.Println(a.Steps == b.Steps, len(a.Path) == a.Steps+1)
	// Output:
	// true true
}
