// Package feed streams row-level change notifications out of postgres.
//
// A broadcast trigger installed by the schema migration fires pg_notify on
// every insert, update, and delete of a watched table, publishing the full
// row as JSON on the table's channel (requests_changes, offers_changes, and
// so on). Listener turns those notifications into ports.Change values.
//
// Delivery is at-least-once. lib/pq reconnects on its own with exponential
// backoff, but notifications sent while the connection was down are gone, so
// every reconnection is surfaced on the resets channel and consumers must
// re-seed from a snapshot.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"freightops/internal/core/ports"
	"freightops/internal/pkg/errs"

	"github.com/lib/pq"
)

const (
	channelSuffix = "_changes"

	minReconnectInterval = 500 * time.Millisecond
	maxReconnectInterval = 30 * time.Second

	// lib/pq recommends pinging an idle listener so a dead connection is
	// noticed before the next notification.
	pingInterval = 90 * time.Second
)

// Listener implements ports.ChangeFeed on top of postgres LISTEN/NOTIFY.
type Listener struct {
	conninfo string
	logger   *slog.Logger

	mu         sync.Mutex
	pqListener *pq.Listener
	subscribed bool
	done       chan struct{}
	closeOnce  sync.Once
}

// NewListener creates a change feed listener for the given postgres
// connection string. The connection is not opened until Subscribe.
func NewListener(conninfo string, logger *slog.Logger) *Listener {
	return &Listener{
		conninfo: conninfo,
		logger:   logger.With("component", "change_feed"),
		done:     make(chan struct{}),
	}
}

// Subscribe opens the notification connection and starts streaming changes
// for the named collections. A Listener supports a single subscription.
func (l *Listener) Subscribe(
	ctx context.Context,
	collections ...string,
) (<-chan ports.Change, <-chan struct{}, error) {
	if len(collections) == 0 {
		return nil, nil, errs.NewValueIsRequiredError("collections")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subscribed {
		return nil, nil, errs.NewValueIsInvalidError("change feed is already subscribed")
	}

	reconnected := make(chan struct{}, 1)
	pqListener := pq.NewListener(
		l.conninfo,
		minReconnectInterval,
		maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			switch event {
			case pq.ListenerEventReconnected:
				select {
				case reconnected <- struct{}{}:
				default:
				}
			case pq.ListenerEventConnectionAttemptFailed:
				l.logger.Warn("feed connection attempt failed", "error", err)
			}
		},
	)

	for _, collection := range collections {
		if err := pqListener.Listen(collection + channelSuffix); err != nil {
			_ = pqListener.Close()
			return nil, nil, errs.NewStoreUnavailableError(err)
		}
	}

	l.pqListener = pqListener
	l.subscribed = true

	changes := make(chan ports.Change)
	resets := make(chan struct{}, 1)
	go l.pump(ctx, pqListener, reconnected, changes, resets)

	return changes, resets, nil
}

// Close tears the feed down and releases the notification connection.
func (l *Listener) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)

		l.mu.Lock()
		if l.pqListener != nil {
			err = l.pqListener.Close()
		}
		l.mu.Unlock()
	})
	return err
}

func (l *Listener) pump(
	ctx context.Context,
	pqListener *pq.Listener,
	reconnected <-chan struct{},
	changes chan<- ports.Change,
	resets chan<- struct{},
) {
	defer close(changes)

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case <-reconnected:
			l.logger.Info("feed connection re-established, signalling reset")
			signalReset(resets)
		case <-ping.C:
			if err := pqListener.Ping(); err != nil {
				l.logger.Warn("feed ping failed", "error", err)
			}
		case notification := <-pqListener.Notify:
			// lib/pq delivers nil after an internal reconnection.
			if notification == nil {
				signalReset(resets)
				continue
			}

			var change ports.Change
			if err := json.Unmarshal([]byte(notification.Extra), &change); err != nil {
				l.logger.Warn("dropping undecodable feed notification",
					"channel", notification.Channel, "error", err)
				continue
			}

			select {
			case changes <- change:
			case <-ctx.Done():
				return
			case <-l.done:
				return
			}
		}
	}
}

func signalReset(resets chan<- struct{}) {
	select {
	case resets <- struct{}{}:
	default:
	}
}
