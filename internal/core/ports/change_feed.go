package ports

import (
	"context"
	"encoding/json"
)

// ChangeKind identifies what happened to a row in the store.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Change is one row-level notification from the store's change feed.
// Payload carries the full row for inserts and updates; deletes carry only
// the primary key.
type Change struct {
	Collection string          `json:"collection"`
	Kind       ChangeKind      `json:"kind"`
	ID         string          `json:"id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// ChangeFeed streams row-level change notifications from the store.
//
// A feed delivers changes at-least-once and in commit order per collection.
// When the underlying connection drops, implementations resubscribe on their
// own with backoff and signal the gap so consumers can re-seed from a
// snapshot; consumers must therefore apply changes idempotently.
type ChangeFeed interface {
	// Subscribe starts streaming changes for the named collections.
	// The returned channel closes when ctx is cancelled or the feed is
	// closed. A true value on the resets channel means the connection was
	// re-established and events may have been missed.
	Subscribe(ctx context.Context, collections ...string) (changes <-chan Change, resets <-chan struct{}, err error)

	// Close tears the feed down and releases its connection.
	Close() error
}
