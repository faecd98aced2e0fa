// Package store persists finished-session history records.
// Backends: SQLite file (default), PostgreSQL (postgres:// DSN) and an in-memory store.
package store

import (
	"context"
	"errors"
	"strings"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("store: closed")

// Record is one finished session
type Record struct {
	ID       int64
	Username string
	Score    int
	Ammo     int // Ammo remaining at session end
	Missed   int // Shots that left the field
}

// Store is the history repository
// Top returns records by score descending, ties in insertion order
type Store interface {
	Save(ctx context.Context, rec Record) error
	Top(ctx context.Context, n int) ([]Record, error)
	Close() error
}

// MemoryDSN selects the in-memory store
const MemoryDSN = "memory:"

// Open selects a backend from the DSN and prepares its schema
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case dsn == MemoryDSN:
		return NewMemory(), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(ctx, dsn)
	default:
		return OpenSQLite(ctx, dsn)
	}
}
