package maze

import "fmt"

// EventKind names the kind of change an Event reports.
type EventKind uint8

const (
	// WallOpened reports a unit that turned from Blocking to Open.
	WallOpened EventKind = iota
	// OverlaySet reports a glyph placed on a unit.
	OverlaySet
	// OverlayCleared reports a glyph removed from a unit.
	OverlayCleared
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case WallOpened:
		return "wall_opened"
	case OverlaySet:
		return "overlay_set"
	case OverlayCleared:
		return "overlay_cleared"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event is one applied change to a maze's frame.
type Event struct {
	Kind  EventKind
	At    Point
	Glyph rune // set for OverlaySet only
}

// Sink receives change events in the order the changes were applied.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Discard is a Sink that drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Recorder is a Sink that keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Emit appends e.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many recorded events have kind k.
func (r *Recorder) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}

	return n
}

// Tee returns a Sink that forwards each event to every non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(e)
			}
		}
	})
}
