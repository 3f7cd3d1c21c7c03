package queries

import (
	"context"
	"time"

	"freightops/internal/cache"
	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/request"
)

// GetMetricsQueryHandler computes the dashboard aggregates from the cached
// collections. Every counter is derived on read; nothing is precomputed, so
// the metrics are always consistent with the cache contents.
type GetMetricsQueryHandler struct {
	store *cache.Store
	now   func() time.Time
}

// NewGetMetricsQueryHandler creates a handler over the shared cache store.
func NewGetMetricsQueryHandler(store *cache.Store) GetMetricsQueryHandler {
	return GetMetricsQueryHandler{store: store, now: time.Now}
}

// Handle computes the metrics.
// "Today" is bounded by local midnight of the server's time zone.
func (h GetMetricsQueryHandler) Handle(
	_ context.Context,
	query GetMetricsQuery,
) (GetMetricsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMetricsQueryResponse{}, err
	}

	var resp GetMetricsQueryResponse

	drivers := make(map[string]struct{})
	for _, t := range h.store.Trips.List() {
		if t.Status.IsTerminal() {
			continue
		}
		resp.ActiveShipments++
		drivers[t.DriverID] = struct{}{}
	}
	resp.ActiveTrucks = len(drivers)

	now := h.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, r := range h.store.Requests.List() {
		if r.Status == request.Pending {
			resp.PendingRequests++
		}
		if r.AcceptedAt != nil && !r.AcceptedAt.Before(midnight) {
			resp.AcceptedToday++
		}
	}

	for _, o := range h.store.Offers.List() {
		if o.Status == offer.Accepted {
			resp.EstimatedCost += o.Price
		}
	}

	return resp, nil
}
