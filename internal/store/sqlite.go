package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteFile is the database file name inside the state directory.
const SQLiteFile = "drafts.db"

// SQLitePath returns the database location for stateDir.
func SQLitePath(stateDir string) string {
	return filepath.Join(stateDir, SQLiteFile)
}

// SQLiteSlot stores values in a single key/value table.
type SQLiteSlot struct {
	db   *sql.DB
	path string
}

// OpenSQLiteSlot opens (or creates) the database at path.
func OpenSQLiteSlot(path string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure state dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	slot := &SQLiteSlot{db: db, path: path}
	if err := slot.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return slot, nil
}

func (s *SQLiteSlot) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS slots (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("store: create slots table: %w", err)
	}
	return nil
}

// Get reads the stored value for key.
func (s *SQLiteSlot) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("store: query slot %s in %s: %w", key, s.path, err)
	}
	if len(value) == 0 {
		return nil, ErrSlotEmpty
	}
	return value, nil
}

// Set overwrites the value for key.
func (s *SQLiteSlot) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("store: write slot %s in %s: %w", key, s.path, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteSlot) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
