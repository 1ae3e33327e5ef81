package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/userkeeper/internal/common"
	"github.com/dmitrijs2005/userkeeper/internal/dbx"
)

// SQLiteKV implements KV on top of a single-table SQLite database.
type SQLiteKV struct {
	db     dbx.DBTX
	closer func() error
}

// NewSQLiteKV returns a SQLiteKV bound to the given DBTX. The kv table is
// expected to exist already; use Open for the full open-and-bootstrap path.
func NewSQLiteKV(db dbx.DBTX) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// Open opens (creating if necessary) the SQLite database at dsn and ensures
// the kv table exists.
func Open(ctx context.Context, dsn string) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	query := `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize kv table: %w", err)
	}

	return &SQLiteKV{db: db, closer: db.Close}, nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, error) {
	query := `select value from kv where key=?`
	row := s.db.QueryRowContext(ctx, query, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

// Set upserts the value under key.
func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	query := ` INSERT INTO kv (key, value)
			values (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert key %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting an absent key is not an error.
func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	query := `delete from kv where key=?`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
