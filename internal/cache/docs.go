// Package cache holds the in-process read models fed by the store's change
// feed. Each collection is keyed by primary key and applies notifications
// idempotently: re-delivered events converge to the same state, and a
// command's own echo arriving later is a harmless overwrite.
//
// The cache is the single source for dashboard queries, so reads never touch
// the store.
package cache
