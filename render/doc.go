// Package render draws a maze.Maze and its change events.
//
// Terminal is a maze.Sink for ANSI terminals: Draw paints the whole frame
// once, then every Emit moves the cursor to the changed unit and reprints it
// from the maze's current state, so an animation costs one short write per
// event. Floor walls are drawn as underlined cells, so a glyph standing on a
// floor keeps the wall visible beneath it; side walls use '│'.
//
// Frame returns the same picture as plain text (no escapes), with '_' for
// floors, '|' for bars and overlay glyphs in place.
package render
