package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const highScoreSchema = `CREATE TABLE IF NOT EXISTS high_score (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	value INTEGER NOT NULL
);`

// SQLite keeps the high score in a single-row table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and ensures the schema.
//
// - Ensures parent directory exists for relative DSNs (e.g. ./data/numguess.db).
// - Configures busy timeout and WAL journaling mode.
func OpenSQLite(dsn string) (*SQLite, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(highScoreSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create high_score: %w", err)
	}
	log.Debug().Str("dsn", dsn).Msg("sqlite high score store ready")
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context) (int, bool, error) {
	var v int
	err := s.db.QueryRowContext(ctx, `SELECT value FROM high_score WHERE id = 1`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query high_score: %w", err)
	}
	return v, true, nil
}

func (s *SQLite) Save(ctx context.Context, value int) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO high_score (id, value) VALUES (1, ?)
        ON CONFLICT(id) DO UPDATE SET value = excluded.value`, value)
	if err != nil {
		return fmt.Errorf("save high_score: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }
