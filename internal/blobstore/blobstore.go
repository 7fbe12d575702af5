// ABOUTME: Store interface for string-keyed blob persistence
// ABOUTME: Defines the non-throwing load/save/remove contract used by all stateful components

package blobstore

import "log/slog"

// Store persists named string blobs. No method returns an error: any
// read, parse, or write failure is logged and degrades to absence, so
// callers always fall back to in-memory defaults. The hub must remain
// usable with storage fully unavailable.
type Store interface {
	// Load returns the blob stored under key, or ok=false if absent or unreadable.
	Load(key string) (value string, ok bool)

	// Save stores value under key. Failures are logged, not returned.
	Save(key, value string)

	// Remove deletes the blob stored under key, if present.
	Remove(key string)
}

// Open returns a SQLite-backed store at path, or an in-memory store when
// path is empty or the database cannot be opened. The fallback keeps the
// application running as a pure in-memory session.
func Open(path string, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		logger.Info("no database path configured, state is in-memory only")
		return NewMemoryStore()
	}

	s, err := NewSQLiteStore(path, logger)
	if err != nil {
		logger.Warn("opening blob store failed, falling back to in-memory state",
			"path", path,
			"error", err)
		return NewMemoryStore()
	}
	return s
}
