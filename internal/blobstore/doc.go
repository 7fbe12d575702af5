// Package blobstore provides durable string-keyed blob persistence.
//
// The Store contract is deliberately non-throwing: loads degrade to
// absence and saves are fire-and-forget with logged warnings, so the
// components above it (identity roster, conversation table) always keep
// working on their in-memory state when storage misbehaves.
//
// Two implementations exist: SQLiteStore for durable storage and
// MemoryStore for tests and the no-database fallback. Open picks the
// right one for a configured path.
package blobstore
