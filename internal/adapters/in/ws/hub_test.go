package ws

import (
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"freightops/internal/cache"
	"freightops/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMatcher(t *testing.T) {
	extract := func(v cache.OfferView, _ string) string { return v.RequestID }

	t.Run("empty_filter_matches_everything", func(t *testing.T) {
		match := requestMatcher("", extract)
		assert.True(t, match(cache.Event[cache.OfferView]{
			Kind: ports.ChangeInsert, ID: "o1", Value: cache.OfferView{RequestID: "r1"},
		}))
	})

	t.Run("other_request_filtered_out", func(t *testing.T) {
		match := requestMatcher("r1", extract)
		assert.False(t, match(cache.Event[cache.OfferView]{
			Kind: ports.ChangeUpdate, ID: "o2", Value: cache.OfferView{RequestID: "r2"},
		}))
		assert.True(t, match(cache.Event[cache.OfferView]{
			Kind: ports.ChangeUpdate, ID: "o1", Value: cache.OfferView{RequestID: "r1"},
		}))
	})

	t.Run("deletes_always_pass", func(t *testing.T) {
		// Deletes carry no row to match on; removing an untracked key is a
		// no-op for the viewer.
		match := requestMatcher("r1", extract)
		assert.True(t, match(cache.Event[cache.OfferView]{
			Kind: ports.ChangeDelete, ID: "o2",
		}))
	})
}

func TestHub_SubscribeWithRequestFilter(t *testing.T) {
	store := cache.NewStore()
	hub := NewHub(store, slog.New(slog.DiscardHandler))

	e := echo.New()
	e.GET("/ws", hub.Handle)
	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	require.NoError(t, conn.WriteJSON(ControlMessage{
		Action:     "subscribe",
		Collection: cache.CollectionOffers,
		RequestID:  "req-a",
	}))

	// The subscription is established asynchronously, so keep applying an
	// interleaved pair until the first frame arrives. The off-request offer
	// always precedes the on-request one; a broken filter would deliver it
	// first.
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(50 * time.Millisecond):
				store.Offers.Apply(ports.ChangeInsert, "offer-noise",
					cache.OfferView{ID: "offer-noise", RequestID: "req-b"})
				store.Offers.Apply(ports.ChangeInsert, "offer-mine",
					cache.OfferView{ID: "offer-mine", RequestID: "req-a"})
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg struct {
		Collection string           `json:"collection"`
		Kind       ports.ChangeKind `json:"kind"`
		ID         string           `json:"id"`
		Data       cache.OfferView  `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))

	assert.Equal(t, cache.CollectionOffers, msg.Collection)
	assert.Equal(t, ports.ChangeInsert, msg.Kind)
	assert.Equal(t, "offer-mine", msg.ID)
	assert.Equal(t, "req-a", msg.Data.RequestID)
}
