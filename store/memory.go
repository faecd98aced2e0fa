package store

import (
	"context"
	"slices"
	"sync"
)

// Memory is a process-local store for tests and storage-less runs
type Memory struct {
	mu      sync.Mutex
	records []Record
	nextID  int64
	closed  bool

	// FailSave, when set, is returned by Save without storing
	FailSave error
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// Save appends one record
func (m *Memory) Save(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.FailSave != nil {
		return m.FailSave
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rec.ID = m.nextID
	m.nextID++
	m.records = append(m.records, rec)
	return nil
}

// Top returns the n best records
func (m *Memory) Top(ctx context.Context, n int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	if n <= 0 {
		return nil, nil
	}

	out := slices.Clone(m.records)
	slices.SortStableFunc(out, func(a, b Record) int {
		return b.Score - a.Score
	})
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// All returns every record in insertion order
func (m *Memory) All() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.records)
}

// Close marks the store closed
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
