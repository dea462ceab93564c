package maze

// Editor is the only way generators and solvers change a maze. Each change is
// applied to the maze before the matching Event reaches the sink.
type Editor struct {
	m    *Maze
	sink Sink
}

// NewEditor returns an Editor for m. A nil sink discards events.
func NewEditor(m *Maze, sink Sink) *Editor {
	if sink == nil {
		sink = Discard
	}

	return &Editor{m: m, sink: sink}
}

// Maze returns the maze being edited.
func (e *Editor) Maze() *Maze { return e.m }

// Open carves the wall between two adjacent cells and emits WallOpened.
// It panics under the same conditions as Maze.Open.
func (e *Editor) Open(a, b Cell) Point {
	p := e.m.Open(a, b)
	e.sink.Emit(Event{Kind: WallOpened, At: p})

	return p
}

// Mark places glyph g on the unit of cell c and emits OverlaySet.
func (e *Editor) Mark(c Cell, g rune) {
	p := e.m.CellPoint(c)
	e.m.setGlyph(p, g)
	e.sink.Emit(Event{Kind: OverlaySet, At: p, Glyph: g})
}

// Unmark removes the glyph on the unit of cell c. It emits OverlayCleared
// only when a glyph was actually present.
func (e *Editor) Unmark(c Cell) {
	p := e.m.CellPoint(c)
	if e.m.Unit(p).Glyph == GlyphNone {
		return
	}
	e.m.setGlyph(p, GlyphNone)
	e.sink.Emit(Event{Kind: OverlayCleared, At: p})
}

// ClearGlyphs removes every overlay glyph, emitting OverlayCleared for each
// unit that carried one, in row-major frame order.
func (e *Editor) ClearGlyphs() {
	for y := 0; y < e.m.Height(); y++ {
		for x := 0; x < e.m.Width(); x++ {
			p := Point{X: x, Y: y}
			if e.m.Unit(p).Glyph == GlyphNone {
				continue
			}
			e.m.setGlyph(p, GlyphNone)
			e.sink.Emit(Event{Kind: OverlayCleared, At: p})
		}
	}
}
