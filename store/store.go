// Package store keeps generated mazes so the HTTP API can serve them again.
//
// A Record holds the text form of a maze plus how it was made. Three
// Repository implementations exist: Memory for tests and single-process use,
// Redis for shared storage with expiry, and Mongo for durable storage.
//
// Seeded generation is deterministic, so FindOrCreate lets callers reuse the
// record already built for the same dimensions, algorithm and seed.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("store: record not found")

// Record is one stored maze.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	Algorithm string    `json:"algorithm"` // generator name, "import" for uploaded mazes
	Seed      int64     `json:"seed"`
	Key       string    `json:"key,omitempty"` // set for seeded records
	Text      string    `json:"text"`          // maze text form
	CreatedAt time.Time `json:"created_at"`
}

// SeedKey identifies the maze a seeded generation produces.
func SeedKey(rows, columns int, algorithm string, seed int64) string {
	return fmt.Sprintf("%dx%d:%s:%d", rows, columns, algorithm, seed)
}

// Repository stores and fetches records.
type Repository interface {
	// Save stores r, replacing any record with the same ID.
	Save(ctx context.Context, r *Record) error
	// ByID returns the record with the given ID or ErrNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*Record, error)
	// FindOrCreate returns the record stored under key, or calls create,
	// stores its result under key and returns it. The boolean reports whether
	// create was used.
	FindOrCreate(ctx context.Context, key string, create func() (*Record, error)) (*Record, bool, error)
}
