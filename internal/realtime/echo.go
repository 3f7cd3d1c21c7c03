package realtime

import (
	"log/slog"

	"freightops/internal/cache"
	"freightops/internal/core/domain/model/invoice"
	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/rating"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/core/ports"
)

// CommandEcho applies committed aggregates straight to the entity cache, so
// a command's own node sees its write without waiting for the change feed
// round trip. The feed delivers the same rows again later; Collection.Apply
// is an idempotent upsert, so the overlap is harmless.
type CommandEcho struct {
	store  *cache.Store
	logger *slog.Logger
}

// NewCommandEcho creates an echo over the given cache store.
func NewCommandEcho(store *cache.Store, logger *slog.Logger) *CommandEcho {
	return &CommandEcho{
		store:  store,
		logger: logger.With("component", "command_echo"),
	}
}

// Publish upserts the view of every tracked aggregate into its collection.
// Wire it as the unit of work factory's onCommit hook. Aggregates without a
// cached collection, position samples for one, are skipped.
func (e *CommandEcho) Publish(aggregates []ports.TrackedAggregate) {
	for _, tracked := range aggregates {
		switch agg := tracked.Aggregate.(type) {
		case *request.Request:
			e.store.Requests.Apply(ports.ChangeUpdate, agg.ID().String(), requestView(agg))
		case *offer.Offer:
			e.store.Offers.Apply(ports.ChangeUpdate, agg.ID().String(), offerView(agg))
		case *trip.Trip:
			e.store.Trips.Apply(ports.ChangeUpdate, agg.ID().String(), tripView(agg))
		case *invoice.Invoice:
			e.store.Invoices.Apply(ports.ChangeUpdate, agg.ID().String(), invoiceView(agg))
		case *rating.Rating:
			e.store.Ratings.Apply(ports.ChangeUpdate, agg.ID().String(), ratingView(agg))
		default:
			e.logger.Debug("skipping uncached aggregate", "id", tracked.ID.String())
		}
	}
}

func requestView(r *request.Request) cache.RequestView {
	return cache.RequestView{
		ID:          r.ID().String(),
		ClientID:    r.ClientID().String(),
		Origin:      r.Origin(),
		Destination: r.Destination(),
		TruckType:   r.TruckType().String(),
		TrucksCount: r.TrucksCount(),
		Status:      r.Status(),
		AcceptedAt:  r.AcceptedAt(),
	}
}

func offerView(o *offer.Offer) cache.OfferView {
	return cache.OfferView{
		ID:        o.ID().String(),
		RequestID: o.RequestID().String(),
		DriverID:  o.DriverID().String(),
		Price:     o.Price(),
		Status:    o.Status(),
		CreatedAt: o.CreatedAt(),
	}
}

func tripView(t *trip.Trip) cache.TripView {
	view := cache.TripView{
		ID:        t.ID().String(),
		RequestID: t.RequestID().String(),
		OfferID:   t.OfferID().String(),
		DriverID:  t.DriverID().String(),
		Status:    t.Status(),
		Progress:  t.Progress(),
	}

	if pos := t.Position(); pos != nil {
		lat, lng := pos.Lat(), pos.Lng()
		view.Lat = &lat
		view.Lng = &lng
	}
	view.ReportedAt = t.ReportedAt()

	return view
}

func invoiceView(i *invoice.Invoice) cache.InvoiceView {
	return cache.InvoiceView{
		ID:        i.ID().String(),
		RequestID: i.RequestID().String(),
		ClientID:  i.ClientID().String(),
		Amount:    i.Amount(),
		Status:    i.Status(),
		IssuedAt:  i.IssuedAt(),
		PaidAt:    i.PaidAt(),
	}
}

func ratingView(r *rating.Rating) cache.RatingView {
	return cache.RatingView{
		ID:        r.ID().String(),
		RequestID: r.RequestID().String(),
		ClientID:  r.ClientID().String(),
		DriverID:  r.DriverID().String(),
		Score:     r.Score(),
	}
}
