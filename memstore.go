package klingon

import (
	"context"
)

// Store is the dictionary backend: an exact-name index of records.
type Store interface {
	// Lookup returns every record named name, in a stable order.
	Lookup(ctx context.Context, name string) ([]Record, error)
}

// MemoryStore is a read-only Store over records held in memory.
type MemoryStore struct {
	byName map[string][]Record
}

// NewMemoryStore indexes records by name, keeping their relative order.
func NewMemoryStore(records []Record) *MemoryStore {
	m := &MemoryStore{byName: make(map[string][]Record)}
	for _, r := range records {
		m.byName[r.Name] = append(m.byName[r.Name], r)
	}
	return m
}

// Lookup implements Store.
func (m *MemoryStore) Lookup(ctx context.Context, name string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]Record(nil), m.byName[name]...), nil
}

// Len returns the number of distinct names.
func (m *MemoryStore) Len() int {
	return len(m.byName)
}
