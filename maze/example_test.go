package maze_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleNewWalled prints a fresh 2×3 maze in text form.
func ExampleNewWalled() {
	m, err := maze.NewWalled(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// _ _____
	// |_|_|_|
	// |_|_| |
}

// ExampleMaze_Open carves a corridor along the top row and down the last column.
func ExampleMaze_Open() {
	m, _ := maze.NewWalled(2, 3)
	m.Open(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0})
	m.Open(maze.Cell{X: 1, Y: 0}, maze.Cell{X: 2, Y: 0})
	m.Open(maze.Cell{X: 2, Y: 0}, maze.Cell{X: 2, Y: 1})
	m.Open(maze.Cell{X: 0, Y: 1}, maze.Cell{X: 1, Y: 1})
	m.Open(maze.Cell{X: 1, Y: 1}, maze.Cell{X: 2, Y: 1})
	fmt.Print(m)
	fmt.Println(m.Verify())
	// Output:
	// _ _____
	// |___  |
	// |___  |
	// <nil>
}

// ExampleParse reads the text form back.
func ExampleParse() {
	m, err := maze.Parse(strings.NewReader("_ ___\n|   |\n|_| |\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Rows(), m.Columns(), m.OpenCount())
	// Output: 2 2 3
}
