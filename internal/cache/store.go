package cache

import (
	"time"

	"freightops/internal/core/domain/model/invoice"
	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/core/domain/model/trip"
)

// Collection names, matching the store tables the change feed watches.
const (
	CollectionRequests = "requests"
	CollectionOffers   = "offers"
	CollectionTrips    = "trips"
	CollectionInvoices = "invoices"
	CollectionRatings  = "ratings"
)

// RequestView is the cached read model of a request row.
type RequestView struct {
	ID          string         `json:"id"`
	ClientID    string         `json:"client_id"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	TruckType   string         `json:"truck_type"`
	TrucksCount int            `json:"trucks_count"`
	Status      request.Status `json:"status"`
	AcceptedAt  *time.Time     `json:"accepted_at,omitempty"`
}

// OfferView is the cached read model of an offer row.
type OfferView struct {
	ID        string       `json:"id"`
	RequestID string       `json:"request_id"`
	DriverID  string       `json:"driver_id"`
	Price     int64        `json:"price"`
	Status    offer.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// TripView is the cached read model of a trip row.
type TripView struct {
	ID         string      `json:"id"`
	RequestID  string      `json:"request_id"`
	OfferID    string      `json:"offer_id"`
	DriverID   string      `json:"driver_id"`
	Status     trip.Status `json:"status"`
	Progress   int         `json:"progress"`
	Lat        *float64    `json:"lat,omitempty"`
	Lng        *float64    `json:"lng,omitempty"`
	ReportedAt *time.Time  `json:"reported_at,omitempty"`
}

// InvoiceView is the cached read model of an invoice row.
type InvoiceView struct {
	ID        string         `json:"id"`
	RequestID string         `json:"request_id"`
	ClientID  string         `json:"client_id"`
	Amount    int64          `json:"amount"`
	Status    invoice.Status `json:"status"`
	IssuedAt  time.Time      `json:"issued_at"`
	PaidAt    *time.Time     `json:"paid_at,omitempty"`
}

// RatingView is the cached read model of a rating row.
type RatingView struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id"`
	ClientID  string `json:"client_id"`
	DriverID  string `json:"driver_id"`
	Score     int    `json:"score"`
}

// Store bundles one collection per watched table. A single Store instance is
// shared by the feed consumer (writer) and the query handlers (readers).
type Store struct {
	Requests *Collection[RequestView]
	Offers   *Collection[OfferView]
	Trips    *Collection[TripView]
	Invoices *Collection[InvoiceView]
	Ratings  *Collection[RatingView]
}

// NewStore creates a Store with empty collections.
func NewStore() *Store {
	return &Store{
		Requests: NewCollection[RequestView](),
		Offers:   NewCollection[OfferView](),
		Trips:    NewCollection[TripView](),
		Invoices: NewCollection[InvoiceView](),
		Ratings:  NewCollection[RatingView](),
	}
}

// Collections lists the names of every watched collection, in feed
// subscription order.
func Collections() []string {
	return []string{
		CollectionRequests,
		CollectionOffers,
		CollectionTrips,
		CollectionInvoices,
		CollectionRatings,
	}
}
