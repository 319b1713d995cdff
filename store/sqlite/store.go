// Package sqlite provides a SQLite-backed dictionary store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tlhingan-hol/klingon"
	"github.com/tlhingan-hol/klingon/store/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned by Get for an unknown id.
	ErrNotFound = errors.New("entry not found")
	// ErrAlreadyExists is returned by Import when a record id is taken.
	ErrAlreadyExists = errors.New("entry already exists")
)

const entryColumns = `id, entry_name, part_of_speech, definition, synonyms, antonyms,
	see_also, notes, hidden_notes, components, examples, search_tags, source`

// Store persists dictionary entries in SQLite and implements klingon.Store.
type Store struct {
	sqlDB *sql.DB
}

var _ klingon.Store = (*Store)(nil)

// Open opens a SQLite dictionary and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Lookup returns every entry named name, ordered by id.
func (s *Store) Lookup(ctx context.Context, name string) ([]klingon.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE entry_name = ? ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", name, err)
	}
	defer rows.Close()

	var out []klingon.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(ctx context.Context, id int64) (klingon.Record, error) {
	if err := ctx.Err(); err != nil {
		return klingon.Record{}, err
	}
	if s == nil || s.sqlDB == nil {
		return klingon.Record{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return klingon.Record{}, ErrNotFound
	}
	if err != nil {
		return klingon.Record{}, fmt.Errorf("get entry %d: %w", id, err)
	}
	return r, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var n int
	if err := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Import inserts records in a single transaction. Records with an explicit
// id are inserted first; a record with a zero id is then assigned the next
// free id.
func (s *Store) Import(ctx context.Context, records []klingon.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	ordered := make([]klingon.Record, 0, len(records))
	for _, r := range records {
		if r.ID != 0 {
			ordered = append(ordered, r)
		}
	}
	for _, r := range records {
		if r.ID == 0 {
			ordered = append(ordered, r)
		}
	}

	for _, r := range ordered {
		if strings.TrimSpace(r.Name) == "" {
			_ = tx.Rollback()
			return fmt.Errorf("entry name is required")
		}
		var id any
		if r.ID != 0 {
			id = r.ID
		}
		if _, err := stmt.ExecContext(ctx, id, r.Name, r.PartOfSpeech, r.Definition,
			r.Synonyms, r.Antonyms, r.SeeAlso, r.Notes, r.HiddenNotes,
			r.Components, r.Examples, r.SearchTags, r.Source); err != nil {
			_ = tx.Rollback()
			if isUniqueViolation(err) {
				return fmt.Errorf("import {%s} id %d: %w", r.Name, r.ID, ErrAlreadyExists)
			}
			return fmt.Errorf("import {%s}: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (klingon.Record, error) {
	var r klingon.Record
	err := row.Scan(&r.ID, &r.Name, &r.PartOfSpeech, &r.Definition, &r.Synonyms, &r.Antonyms,
		&r.SeeAlso, &r.Notes, &r.HiddenNotes, &r.Components, &r.Examples, &r.SearchTags, &r.Source)
	return r, err
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
