// Package solver finds the path from a maze's entrance cell (0,0) to its exit
// cell (columns-1, rows-1).
//
// What:
//
//   - DepthFirst: backtracking search. Neighbours are tried left, right, up,
//     down; the stack at the moment the exit is reached is the path.
//   - AStar: best-first search on f = g + h, where h is the Manhattan distance
//     to the exit. Ties go to the smaller h, then to insertion order.
//
// Both searches are runner.Stepper values. After the exit is found the same
// stepper keeps going for len(path) more steps, marking each path cell with
// the arrow toward its successor and the exit cell with a down arrow.
//
// On a perfect maze the path is unique, so both algorithms return the same
// cells; they differ only in how many cells they expand on the way.
//
// Options:
//
//   - WithTrace(): mark expanded cells with a dot while searching.
//   - WithSink(s): receive every glyph change as a maze.Event.
//   - WithRunOptions(...): pacing, step hooks and logging for the driver.
//
// Complexity (n = rows·columns):
//
//   - DepthFirst: O(n) time, O(n) memory.
//   - AStar:      O(n log n) time, O(n) memory.
//
// Errors:
//
//   - ErrUnknownKind: a Kind outside the defined algorithms.
//   - ErrNilMaze:     no maze was supplied.
//   - ErrNoPath:      the exit is unreachable from the entrance.
package solver
