// Package maze is the grid model shared by every generator and solver in
// github.com/katalvlaran/labyrinth.
//
// What:
//
//   - Maze stores the wall state of a rows×columns grid as one frame matrix of
//     width 2·columns+1 and height rows+1.
//   - Cells and frame units are addressed by distinct types (Cell, Point), so a
//     cell coordinate can never be passed where a frame coordinate is expected.
//   - Each frame unit is Blocking, Open or Border and may carry an overlay
//     glyph used purely for animation; glyphs never change passability.
//   - Editor applies changes and reports them to a Sink as Events.
//   - Parse and WriteTo move a maze to and from its character-grid text form.
//
// Frame layout for a 3×3 maze straight out of NewWalled:
//
//	_ _____    top row: entrance opening at (1,0)
//	|_|_|_|    cell (x,y) sits on unit (2x+1, y+1), which is also its floor
//	|_|_|_|    separator between (x,y) and (x+1,y) is unit (2x+2, y+1)
//	|_|_| |    exit opening at (2·columns-1, rows)
//
// Complexity:
//
//   - NewWalled, Clone, Equal, Verify: O(rows×columns) time and memory.
//   - Unit, SetUnit, WallBetween, Open, Passable: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or columns.
//   - ErrNotPerfect: the open passages are not a spanning tree.
//   - *ParseError wrapping ErrBadCharacter, ErrUnevenLines, ErrTooFewLines,
//     ErrTooNarrow or ErrEvenWidth for malformed text input.
//
// Out-of-range frame access and carving between non-adjacent cells are
// programming errors and panic.
package maze
