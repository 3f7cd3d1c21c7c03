package queries

import (
	"testing"
	"time"

	"freightops/internal/cache"
	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed[T any](c *cache.Collection[T], id string, v T) {
	c.Apply(ports.ChangeInsert, id, v)
}

func TestGetMetricsQueryHandler_Handle(t *testing.T) {
	store := cache.NewStore()
	now := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)
	yesterday := now.Add(-20 * time.Hour) // before local midnight
	thisMorning := now.Add(-6 * time.Hour)

	// One pending request, one already in bidding (not pending anymore), one
	// accepted today, one accepted yesterday, one cancelled.
	seed(store.Requests, "r0", cache.RequestView{ID: "r0", Status: request.Pending})
	seed(store.Requests, "r1", cache.RequestView{ID: "r1", Status: request.OffersReceived})
	seed(store.Requests, "r2", cache.RequestView{ID: "r2", Status: request.Accepted, AcceptedAt: &thisMorning})
	seed(store.Requests, "r3", cache.RequestView{ID: "r3", Status: request.InProgress, AcceptedAt: &yesterday})
	seed(store.Requests, "r4", cache.RequestView{ID: "r4", Status: request.Cancelled})

	// Two active trips sharing a driver plus one with its own, one completed.
	seed(store.Trips, "t1", cache.TripView{ID: "t1", DriverID: "d1", Status: trip.Assigned})
	seed(store.Trips, "t2", cache.TripView{ID: "t2", DriverID: "d1", Status: trip.InTransit})
	seed(store.Trips, "t3", cache.TripView{ID: "t3", DriverID: "d2", Status: trip.AtDelivery})
	seed(store.Trips, "t4", cache.TripView{ID: "t4", DriverID: "d3", Status: trip.Completed})

	// Accepted offers count toward estimated cost; others do not.
	seed(store.Offers, "o1", cache.OfferView{ID: "o1", Price: 3000, Status: offer.Accepted})
	seed(store.Offers, "o2", cache.OfferView{ID: "o2", Price: 4500, Status: offer.Rejected})
	seed(store.Offers, "o3", cache.OfferView{ID: "o3", Price: 2000, Status: offer.Accepted})
	seed(store.Offers, "o4", cache.OfferView{ID: "o4", Price: 9999, Status: offer.Pending})

	h := NewGetMetricsQueryHandler(store)
	h.now = func() time.Time { return now }

	resp, err := h.Handle(t.Context(), NewGetMetricsQuery())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.ActiveShipments)
	assert.Equal(t, 1, resp.PendingRequests)
	assert.Equal(t, 1, resp.AcceptedToday)
	assert.Equal(t, int64(5000), resp.EstimatedCost)
	assert.Equal(t, 2, resp.ActiveTrucks)
}

func TestGetMetricsQueryHandler_Handle_BiddingRequestsAreNotPending(t *testing.T) {
	store := cache.NewStore()
	seed(store.Requests, "r1", cache.RequestView{ID: "r1", Status: request.OffersReceived})

	h := NewGetMetricsQueryHandler(store)

	resp, err := h.Handle(t.Context(), NewGetMetricsQuery())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.PendingRequests, "bidding already started; the request is no longer pending")
}

func TestGetMetricsQueryHandler_Handle_EmptyCache(t *testing.T) {
	h := NewGetMetricsQueryHandler(cache.NewStore())

	resp, err := h.Handle(t.Context(), NewGetMetricsQuery())
	require.NoError(t, err)
	assert.Equal(t, GetMetricsQueryResponse{}, resp)
}

func TestGetMetricsQueryHandler_Handle_ValidationError(t *testing.T) {
	h := NewGetMetricsQueryHandler(cache.NewStore())

	_, err := h.Handle(t.Context(), GetMetricsQuery{}) // not constructed properly
	require.ErrorIs(t, err, ErrGetMetricsQueryIsNotConstructed)
}
