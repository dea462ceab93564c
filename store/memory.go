package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is a Repository held in process memory.
type Memory struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]Record
	byKey map[string]uuid.UUID
}

// NewMemory returns an empty Memory repository.
func NewMemory() *Memory {
	return &Memory{
		byID:  make(map[uuid.UUID]Record),
		byKey: make(map[string]uuid.UUID),
	}
}

// Save stores a copy of r, replacing any record with the same ID.
func (m *Memory) Save(_ context.Context, r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.save(r)

	return nil
}

func (m *Memory) save(r *Record) {
	m.byID[r.ID] = *r
	if r.Key != "" {
		m.byKey[r.Key] = r.ID
	}
}

// ByID returns a copy of the record with id, or ErrNotFound.
func (m *Memory) ByID(_ context.Context, id uuid.UUID) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &r, nil
}

// FindOrCreate holds the repository lock while create runs, so concurrent
// callers with the same key build the record once.
func (m *Memory) FindOrCreate(_ context.Context, key string, create func() (*Record, error)) (*Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id, ok := m.byKey[key]; ok {
		r := m.byID[id]
		return &r, false, nil
	}
	r, err := create()
	if err != nil {
		return nil, false, err
	}
	r.Key = key
	m.save(r)

	return r, true, nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.byID)
}
