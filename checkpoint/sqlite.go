package checkpoint

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists checkpoint marks in a SQLite database so a
// batch can resume across process restarts.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and migrates) the checkpoint database at path.
// Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open checkpoint db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate checkpoint db: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS checkpoints (
		component TEXT PRIMARY KEY,
		spec_hash TEXT NOT NULL,
		marked_at DATETIME NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Done(ctx context.Context, component, hash string) (bool, error) {
	var stored string
	err := s.db.QueryRowContext(ctx,
		`SELECT spec_hash FROM checkpoints WHERE component = ?`, component).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query checkpoint: %w", err)
	}
	return stored == hash, nil
}

func (s *SQLiteStore) Mark(ctx context.Context, component, hash string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO checkpoints (component, spec_hash, marked_at) VALUES (?, ?, ?)
		 ON CONFLICT(component) DO UPDATE SET spec_hash = excluded.spec_hash, marked_at = excluded.marked_at`,
		component, hash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark checkpoint: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Reset(ctx context.Context, component string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM checkpoints WHERE component = ?`, component)
	if err != nil {
		return fmt.Errorf("reset checkpoint: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
