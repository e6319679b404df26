package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"
	_ "modernc.org/sqlite"
)

// persistKey is the single row the document lives under. The value carries
// the app's original storage namespace so an exported document stays
// recognizable.
const persistKey = "drunkirk:persist:v1"

// SQLite stores the document as one row in a key-value table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and runs the
// schema migration.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	const schema = `CREATE TABLE IF NOT EXISTS persist (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Load reads the document. A missing row, unparseable JSON, or a version
// other than DocumentVersion all return (nil, nil).
func (s *SQLite) Load() (*Document, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM persist WHERE key = ?", persistKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, nil
	}
	if doc.Version != DocumentVersion {
		return nil, nil
	}
	return &doc, nil
}

// Save upserts the document, retrying briefly when another connection holds
// the write lock.
func (s *SQLite) Save(doc *Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}

	backoff := retry.WithMaxRetries(3, retry.NewConstant(50*time.Millisecond))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		_, execErr := s.db.ExecContext(ctx,
			`INSERT INTO persist (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			persistKey, string(raw))
		if isBusy(execErr) {
			return retry.RetryableError(execErr)
		}
		return execErr
	})
	if err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	return nil
}

// Clear deletes the document row.
func (s *SQLite) Clear() error {
	if _, err := s.db.Exec("DELETE FROM persist WHERE key = ?", persistKey); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	return nil
}

// Close checkpoints the WAL and closes the database.
func (s *SQLite) Close() error {
	_, checkpointErr := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
	return multierr.Combine(checkpointErr, s.db.Close())
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
