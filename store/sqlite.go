package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/gunslinger/log"
)

// SQLite is a file-backed history store
type SQLite struct {
	db     *sql.DB
	closed atomic.Bool
	qb     sq.StatementBuilderType
}

// OpenSQLite opens (creating if needed) the database file and migrates it
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// Single connection keeps ":memory:" databases and write ordering consistent
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	s := &SQLite{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite %s: %w", path, err)
	}
	return s, nil
}

func (s *SQLite) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaVersionDDL); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.ID <= current {
			continue
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.SQLite); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.ID, m.Description, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, m.ID); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.ID, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		log.Debug("applied migration", "backend", "sqlite", "id", m.ID, "description", m.Description)
	}
	return nil
}

// Save appends one record
func (s *SQLite) Save(ctx context.Context, rec Record) error {
	if s.closed.Load() {
		return ErrClosed
	}

	query, args, err := s.qb.Insert("history").
		Columns("username", "score", "ammo", "bullets_missed").
		Values(rec.Username, rec.Score, rec.Ammo, rec.Missed).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// Top returns the n best records
func (s *SQLite) Top(ctx context.Context, n int) ([]Record, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if n <= 0 {
		return nil, nil
	}

	query, args, err := topQuery(s.qb, n).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Username, &r.Score, &r.Ammo, &r.Missed); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database handle
func (s *SQLite) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.db.Close()
}

func topQuery(qb sq.StatementBuilderType, n int) sq.SelectBuilder {
	return qb.Select("id", "username", "score", "ammo", "bullets_missed").
		From("history").
		OrderBy("score DESC", "id ASC").
		Limit(uint64(n))
}
