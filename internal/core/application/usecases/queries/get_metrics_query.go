// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries are served from the in-process cache, never from the store.
package queries

import (
	"errors"

	"freightops/internal/pkg/guard"
)

var (
	ErrGetMetricsQueryIsNotConstructed = errors.New(
		"GetMetricsQuery must be created via NewGetMetricsQuery constructor",
	)
)

// GetMetricsQuery retrieves the dashboard aggregates: shipment activity,
// open demand, and money in flight.
type GetMetricsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMetricsQuery creates a query to compute the dashboard metrics.
// This is a parameterless query over the cached collections.
func NewGetMetricsQuery() GetMetricsQuery {
	return GetMetricsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMetricsQueryIsNotConstructed if validation fails.
func (q GetMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetMetricsQueryIsNotConstructed)
}

// GetMetricsQueryResponse carries the dashboard aggregates.
type GetMetricsQueryResponse struct {
	// ActiveShipments is the number of trips in a non-terminal milestone.
	ActiveShipments int `json:"activeShipments"`

	// PendingRequests is the number of requests still open for offers.
	PendingRequests int `json:"pendingRequests"`

	// AcceptedToday is the number of requests accepted since local midnight.
	AcceptedToday int `json:"acceptedToday"`

	// EstimatedCost is the sum of accepted offer prices, in the smallest
	// currency unit.
	EstimatedCost int64 `json:"estimatedCost"`

	// ActiveTrucks is the number of distinct drivers with a trip underway.
	ActiveTrucks int `json:"activeTrucks"`
}
