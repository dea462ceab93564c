// Package generator carves perfect mazes into a walled maze.Maze.
//
// What:
//
//   - DepthFirst: randomized depth-first carving. Shuffles the four directions
//     at every cell and follows the first unvisited neighbour, backtracking when
//     none is left. Produces long winding corridors.
//   - BreadthFirst: the same stack skeleton, but after every carve the whole
//     frontier stack is shuffled, so the next cell to grow from is picked at
//     random. Produces shorter, bushier branches.
//   - Kruskal: every internal wall in one shuffled list; a wall is opened only
//     when the cells it separates are in different disjoint sets.
//
// Every algorithm is a runner.Stepper, so a caller can pace or interrupt
// carving between any two steps. All randomness comes from the *rand.Rand the
// caller passes in, so a fixed seed reproduces the same maze.
//
// Guarantees:
//
//   - The result is a spanning tree: rows·columns-1 open internal walls, no
//     cycles, every cell reachable from the entrance.
//   - The entrance and exit openings are never touched.
//   - Every change is reported to the sink after it is applied.
//
// Complexity (n = rows·columns):
//
//   - DepthFirst:   O(n) time, O(n) memory.
//   - BreadthFirst: O(n²) time in the worst case (frontier shuffles), O(n) memory.
//   - Kruskal:      O(n·α(n)) time, O(n) memory.
//
// Errors:
//
//   - ErrUnknownKind: a Kind outside the three defined algorithms.
//   - ErrNilMaze:     Generate or New was given no maze.
//   - ErrNilRand:     no randomness source was supplied.
//   - ErrNotWalled:   the maze already has open internal walls.
package generator
