// Package community holds the view-local feature stores: the feed,
// the package mutual-aid board, the maintenance tracker, and visitor
// access records.
//
// Unlike identity and chat these stores are in-memory only and reset on
// restart. They read the roster for attribution but carry no
// cross-cutting aggregation; each is an independent list with a small
// state machine.
package community
