// ABOUTME: SQLite implementation of the blob Store using mattn/go-sqlite3
// ABOUTME: Single key/value table with automatic schema creation and WAL mode

package blobstore

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store on a single blobs table
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a SQLite blob store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "blobstore")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS blobs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("blob store initialized", "path", path)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Load returns the blob stored under key, or ok=false if absent or unreadable
func (s *SQLiteStore) Load(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		s.logger.Warn("blob load failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

// Save stores value under key, replacing any previous blob
func (s *SQLiteStore) Save(key, value string) {
	_, err := s.db.Exec(`
		INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		s.logger.Warn("blob save failed", "key", key, "error", err)
	}
}

// Remove deletes the blob stored under key
func (s *SQLiteStore) Remove(key string) {
	if _, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", key); err != nil {
		s.logger.Warn("blob remove failed", "key", key, "error", err)
	}
}

// Close releases the underlying database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
