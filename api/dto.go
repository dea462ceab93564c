package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/store"
)

// CreateMazeRequest asks for a freshly generated maze. A nil Seed picks one at
// random; a given Seed returns the same maze every time.
type CreateMazeRequest struct {
	Rows      int    `json:"rows" binding:"required,min=1"`
	Columns   int    `json:"columns" binding:"required,min=1"`
	Algorithm string `json:"algorithm"`
	Seed      *int64 `json:"seed"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	Algorithm string    `json:"algorithm"`
	Seed      int64     `json:"seed"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func newMazeResponse(r *store.Record) MazeResponse {
	return MazeResponse{
		ID:        r.ID,
		Rows:      r.Rows,
		Columns:   r.Columns,
		Algorithm: r.Algorithm,
		Seed:      r.Seed,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

// StatsResponse summarizes a maze's passages.
type StatsResponse struct {
	Cells     int `json:"cells"`
	DeadEnds  int `json:"dead_ends"`
	Corridors int `json:"corridors"`
	Junctions int `json:"junctions"`
	Solution  int `json:"solution"`
	Longest   int `json:"longest"`
}

func newStatsResponse(s maze.Stats) StatsResponse {
	return StatsResponse{
		Cells:     s.Cells,
		DeadEnds:  s.DeadEnds,
		Corridors: s.Corridors,
		Junctions: s.Junctions,
		Solution:  s.Solution,
		Longest:   s.Longest,
	}
}

// CellDTO is a cell coordinate.
type CellDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SolutionResponse is the route from entrance to exit.
type SolutionResponse struct {
	Solver   string    `json:"solver"`
	Steps    int       `json:"steps"`
	Expanded int       `json:"expanded"`
	Path     []CellDTO `json:"path"`
	Frame    string    `json:"frame"` // maze text with the route drawn in
}

// EventDTO is one change event; X and Y are frame coordinates.
type EventDTO struct {
	Kind  string `json:"kind"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph,omitempty"`
}

// EventsResponse replays the changes of one phase so a client can animate it.
type EventsResponse struct {
	Phase     string     `json:"phase"`
	Algorithm string     `json:"algorithm"`
	Rows      int        `json:"rows"`
	Columns   int        `json:"columns"`
	Events    []EventDTO `json:"events"`
}

func newEventDTOs(events []maze.Event) []EventDTO {
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dto := EventDTO{Kind: e.Kind.String(), X: e.At.X, Y: e.At.Y}
		if e.Glyph != maze.GlyphNone {
			dto.Glyph = string(e.Glyph)
		}
		out = append(out, dto)
	}

	return out
}
