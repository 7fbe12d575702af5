// Package chat holds the persisted conversation table: per-pair message
// logs with read receipts and unread aggregation.
//
// Conversations are keyed by a symmetric id derived from the two
// participant ids, created lazily on first message and never deleted.
// Messages keep the legacy storage shape on the wire, and a migration
// pass on load backfills read state for data that predates it.
package chat
