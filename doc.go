// Package labyrinth generates random perfect mazes, animates the carving one
// change at a time, and solves them.
//
// 🚀 What is labyrinth?
//
//	A small maze toolkit built around one grid model:
//		• maze/      the wall matrix, cells, the editor and its change events,
//		             the text form, verification and passage statistics
//		• generator/ randomized depth-first, breadth/stack hybrid and Kruskal carving
//		• solver/    depth-first backtracking and A* with a Manhattan heuristic
//		• runner/    the step loop: pacing, cancellation, hooks, logging
//		• render/    an ANSI terminal sink and a plain-text frame
//		• store/     in-memory, Redis and MongoDB repositories for mazes
//		• api/       gin HTTP routes to create, import, fetch, solve and replay
//		• config/    environment and .env settings, CLI request validation
//		• cmd/maze   the command-line front end and "maze serve"
//		• examples/  a solver comparison and an API replay client
//
// ✨ Guarantees
//
//   - Every generator yields a spanning tree: rows·columns-1 open internal
//     walls, no cycles, every cell reachable from the entrance at (0,0).
//   - Generators and solvers are steppers; the caller decides how fast they
//     run and may stop them between any two steps.
//   - Every change reaches a sink after it has been applied to the maze.
//   - The same seed reproduces the same maze.
//
// Quick ASCII example (2×3, text form):
//
//	_ _____
//	|___  |
//	|___  |
//
// The entrance is the gap in the top border, the exit the gap in the bottom
// border; '_' is a floor wall and '|' a side wall.
//
//	go run ./cmd/maze 12 30 -a kruskal -s a_star -t
package labyrinth
