// Package session is the facade every feature view talks to.
//
// It wraps the identity registry and the conversation store behind one
// explicit object, constructed once in main and injected into the web
// layer. Views never touch the underlying stores directly; all mutation
// goes through the facade's narrow operation set.
//
// Derived aggregates are memoized with explicit invalidation: the
// conversation store carries a monotonic revision counter, and the
// unread total is cached keyed on (revision, user id).
package session
