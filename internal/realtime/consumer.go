// Package realtime keeps the in-memory entity cache convergent with the
// store. A Consumer subscribes to the change feed, decodes row payloads into
// view models, and applies them to the cache; whenever the feed signals a
// reconnection it re-seeds every watched collection from a full snapshot, so
// no committed change stays missing.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"freightops/internal/cache"
	"freightops/internal/core/ports"
)

// reseedRetryInterval paces snapshot retries after a failed re-seed.
const reseedRetryInterval = 2 * time.Second

// SnapshotSource reads the full contents of a collection, one JSON row per
// element, in the same encoding the feed payloads use.
type SnapshotSource interface {
	Snapshot(ctx context.Context, collection string) ([]json.RawMessage, error)
}

// Consumer pipes feed changes into the cache. It shares write access with
// CommandEcho, which upserts committed aggregates ahead of the feed; query
// handlers and the websocket hub only read.
type Consumer struct {
	feed      ports.ChangeFeed
	store     *cache.Store
	snapshots SnapshotSource
	logger    *slog.Logger
}

// NewConsumer creates a feed consumer over the given cache store.
func NewConsumer(
	feed ports.ChangeFeed,
	store *cache.Store,
	snapshots SnapshotSource,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		feed:      feed,
		store:     store,
		snapshots: snapshots,
		logger:    logger.With("component", "realtime_consumer"),
	}
}

// Run subscribes to the feed, seeds the cache, and applies changes until ctx
// is cancelled or the feed closes. Blocking; run it in its own goroutine.
func (c *Consumer) Run(ctx context.Context) error {
	changes, resets, err := c.feed.Subscribe(ctx, cache.Collections()...)
	if err != nil {
		return err
	}

	// Subscribe before seeding so changes committed during the snapshot
	// read are queued, not lost; applying them on top of the snapshot is
	// an idempotent merge.
	if err := c.seedUntilDone(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-resets:
			if err := c.seedUntilDone(ctx); err != nil {
				return err
			}
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if err := c.apply(change); err != nil {
				c.logger.Warn("dropping unappliable change",
					"collection", change.Collection, "id", change.ID, "error", err)
			}
		}
	}
}

// seedUntilDone retries the snapshot read until it succeeds or ctx ends.
// A cache left un-seeded after a reconnection would silently serve stale
// reads, so giving up is not an option.
func (c *Consumer) seedUntilDone(ctx context.Context) error {
	for {
		err := c.seed(ctx)
		if err == nil {
			return nil
		}

		c.logger.Error("cache re-seed failed, retrying", "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reseedRetryInterval):
		}
	}
}

func (c *Consumer) seed(ctx context.Context) error {
	if err := seedCollection(ctx, c.snapshots, cache.CollectionRequests, c.store.Requests); err != nil {
		return err
	}
	if err := seedCollection(ctx, c.snapshots, cache.CollectionOffers, c.store.Offers); err != nil {
		return err
	}
	if err := seedCollection(ctx, c.snapshots, cache.CollectionTrips, c.store.Trips); err != nil {
		return err
	}
	if err := seedCollection(ctx, c.snapshots, cache.CollectionInvoices, c.store.Invoices); err != nil {
		return err
	}
	if err := seedCollection(ctx, c.snapshots, cache.CollectionRatings, c.store.Ratings); err != nil {
		return err
	}

	c.logger.Info("cache seeded",
		"requests", c.store.Requests.Len(),
		"offers", c.store.Offers.Len(),
		"trips", c.store.Trips.Len(),
		"invoices", c.store.Invoices.Len(),
		"ratings", c.store.Ratings.Len(),
	)
	return nil
}

func (c *Consumer) apply(change ports.Change) error {
	switch change.Collection {
	case cache.CollectionRequests:
		return applyChange(c.store.Requests, change)
	case cache.CollectionOffers:
		return applyChange(c.store.Offers, change)
	case cache.CollectionTrips:
		return applyChange(c.store.Trips, change)
	case cache.CollectionInvoices:
		return applyChange(c.store.Invoices, change)
	case cache.CollectionRatings:
		return applyChange(c.store.Ratings, change)
	default:
		c.logger.Warn("ignoring change for unwatched collection", "collection", change.Collection)
		return nil
	}
}

// applyChange decodes one feed payload and merges it into the collection.
// Deletes carry only the primary key, so their payload is not decoded.
func applyChange[T any](col *cache.Collection[T], change ports.Change) error {
	var view T
	if change.Kind != ports.ChangeDelete {
		if err := json.Unmarshal(change.Payload, &view); err != nil {
			return err
		}
	}

	col.Apply(change.Kind, change.ID, view)
	return nil
}

// seedCollection reads a full snapshot and swaps it into the collection.
func seedCollection[T any](
	ctx context.Context,
	source SnapshotSource,
	collection string,
	col *cache.Collection[T],
) error {
	rows, err := source.Snapshot(ctx, collection)
	if err != nil {
		return err
	}

	snapshot := make(map[string]T, len(rows))
	for _, row := range rows {
		var view T
		if err := json.Unmarshal(row, &view); err != nil {
			return err
		}

		var id struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(row, &id); err != nil {
			return err
		}
		snapshot[id.ID] = view
	}

	col.Reset(snapshot)
	return nil
}
