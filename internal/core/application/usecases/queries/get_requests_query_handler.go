package queries

import (
	"context"
	"sort"

	"freightops/internal/cache"
)

// GetRequestsQueryHandler serves request listings from the cache.
type GetRequestsQueryHandler struct {
	store *cache.Store
}

// NewGetRequestsQueryHandler creates a handler over the shared cache store.
func NewGetRequestsQueryHandler(store *cache.Store) GetRequestsQueryHandler {
	return GetRequestsQueryHandler{store: store}
}

// Handle returns the matching requests sorted by identifier for a stable
// listing order.
func (h GetRequestsQueryHandler) Handle(
	_ context.Context,
	query GetRequestsQuery,
) ([]cache.RequestView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := h.store.Requests.List()
	if filter := query.Status(); filter != nil {
		filtered := views[:0]
		for _, v := range views {
			if v.Status == *filter {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}
	if filter := query.ClientID(); filter != nil {
		clientID := filter.String()
		filtered := views[:0]
		for _, v := range views {
			if v.ClientID == clientID {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views, nil
}
