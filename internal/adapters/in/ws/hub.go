// Package ws pushes cache change events to connected dashboard viewers over
// websockets. Viewers subscribe and unsubscribe per collection, optionally
// narrowed to one request; every matching change applied to a subscribed
// collection is forwarded as a JSON frame.
package ws

import (
	"log/slog"
	"sync"

	"freightops/internal/cache"
	"freightops/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// sessionBuffer bounds the per-subscription event queue. A viewer that falls
// behind loses events rather than stalling the cache.
const sessionBuffer = 64

// ControlMessage is what a viewer sends to manage its subscriptions.
// RequestID, when set on a subscribe, narrows the subscription to changes
// belonging to that request.
type ControlMessage struct {
	Action     string `json:"action"` // "subscribe" or "unsubscribe"
	Collection string `json:"collection"`
	RequestID  string `json:"request_id,omitempty"`
}

// ChangeMessage is one change pushed to a viewer.
type ChangeMessage struct {
	Collection string           `json:"collection"`
	Kind       ports.ChangeKind `json:"kind"`
	ID         string           `json:"id"`
	Data       any              `json:"data,omitempty"`
}

// Hub upgrades viewer connections and wires their subscriptions to the cache.
type Hub struct {
	store    *cache.Store
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates a hub over the shared cache store.
func NewHub(store *cache.Store, logger *slog.Logger) *Hub {
	return &Hub{
		store:    store,
		upgrader: websocket.Upgrader{},
		logger:   logger.With("component", "ws_hub"),
	}
}

// Handle serves GET /ws - upgrades the connection and processes control
// messages until the viewer disconnects.
func (h *Hub) Handle(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	session := newSession(conn)
	defer session.close()

	for {
		var msg ControlMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("viewer connection failed", "error", err)
			}
			return nil
		}

		switch msg.Action {
		case "subscribe":
			h.subscribe(session, msg)
		case "unsubscribe":
			session.unsubscribe(msg.Collection)
		default:
			h.logger.Warn("ignoring unknown control action", "action", msg.Action)
		}
	}
}

func (h *Hub) subscribe(s *session, msg ControlMessage) {
	switch msg.Collection {
	case cache.CollectionRequests:
		// The request collection is keyed by request id, so the filter
		// matches the event key itself.
		forward(s, msg.Collection, h.store.Requests, requestMatcher[cache.RequestView](
			msg.RequestID, func(_ cache.RequestView, id string) string { return id },
		))
	case cache.CollectionOffers:
		forward(s, msg.Collection, h.store.Offers, requestMatcher(
			msg.RequestID, func(v cache.OfferView, _ string) string { return v.RequestID },
		))
	case cache.CollectionTrips:
		forward(s, msg.Collection, h.store.Trips, requestMatcher(
			msg.RequestID, func(v cache.TripView, _ string) string { return v.RequestID },
		))
	case cache.CollectionInvoices:
		forward(s, msg.Collection, h.store.Invoices, requestMatcher(
			msg.RequestID, func(v cache.InvoiceView, _ string) string { return v.RequestID },
		))
	case cache.CollectionRatings:
		forward(s, msg.Collection, h.store.Ratings, requestMatcher(
			msg.RequestID, func(v cache.RatingView, _ string) string { return v.RequestID },
		))
	default:
		h.logger.Warn("ignoring subscription to unknown collection", "collection", msg.Collection)
	}
}

// requestMatcher builds the per-subscription event filter. An empty requestID
// matches everything. Deletes carry no row, so they always pass; dropping an
// untracked key is a no-op for the viewer.
func requestMatcher[T any](requestID string, extract func(value T, id string) string) func(cache.Event[T]) bool {
	if requestID == "" {
		return func(cache.Event[T]) bool { return true }
	}

	return func(ev cache.Event[T]) bool {
		if ev.Kind == ports.ChangeDelete {
			return true
		}
		return extract(ev.Value, ev.ID) == requestID
	}
}

// forward pipes one collection's matching events into the session until the
// subscription is cancelled or a write fails.
func forward[T any](s *session, collection string, col *cache.Collection[T], match func(cache.Event[T]) bool) {
	events, cancel := col.Subscribe(sessionBuffer)
	if !s.addSubscription(collection, cancel) {
		cancel()
		return
	}

	go func() {
		for ev := range events {
			if !match(ev) {
				continue
			}

			msg := ChangeMessage{
				Collection: collection,
				Kind:       ev.Kind,
				ID:         ev.ID,
			}
			if ev.Kind != ports.ChangeDelete {
				msg.Data = ev.Value
			}

			if err := s.send(msg); err != nil {
				s.unsubscribe(collection)
				return
			}
		}
	}()
}

// session is one connected viewer. Writes are serialized by a per-session
// mutex because multiple collection forwarders share the connection.
type session struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	mu   sync.Mutex
	subs map[string]func()
}

func newSession(conn *websocket.Conn) *session {
	return &session{
		conn: conn,
		subs: make(map[string]func()),
	}
}

func (s *session) send(msg ChangeMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(msg)
}

// addSubscription registers the cancel function unless the collection is
// already subscribed.
func (s *session) addSubscription(collection string, cancel func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[collection]; ok {
		return false
	}
	s.subs[collection] = cancel
	return true
}

func (s *session) unsubscribe(collection string) {
	s.mu.Lock()
	cancel, ok := s.subs[collection]
	delete(s.subs, collection)
	s.mu.Unlock()

	if ok {
		cancel()
	}
}

func (s *session) close() {
	s.mu.Lock()
	cancels := make([]func(), 0, len(s.subs))
	for _, cancel := range s.subs {
		cancels = append(cancels, cancel)
	}
	s.subs = make(map[string]func())
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	_ = s.conn.Close()
}
