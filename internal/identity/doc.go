// Package identity manages the resident roster and the active session.
//
// The registry owns the canonical in-memory roster and active-user
// pointer. State is loaded once at startup and written through to the
// blob store on every mutation; persistence failures never surface past
// the blob store, so the roster keeps working in memory.
//
// Registering a user makes them the active user immediately. The active
// pointer is nilable and every caller must handle the no-session case.
package identity
