package commands

import (
	"context"
	"errors"
	"time"

	"freightops/internal/core/domain/model/invoice"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/pkg/errs"
)

// AcceptOfferCommandHandler orchestrates the acceptance transaction, the
// heart of the marketplace. In one transaction it:
//   - accepts the winning offer and the request,
//   - rejects every other pending offer on the request,
//   - creates the trip (Assigned, zero progress),
//   - creates the invoice for the winning offer's price.
//
// Either all of it happens or none of it does.
//
// Concurrent acceptances of the same request serialize on the request row
// lock. The loser wakes up, sees the request already settled, and gets a
// ConflictingAcceptanceError; nothing it did is persisted.
type AcceptOfferCommandHandler struct {
	uowFactory AcceptanceUoWFactory
}

// AcceptOfferResult carries the identifiers of the records the acceptance
// created, so the caller can return them to the accepting client.
type AcceptOfferResult struct {
	TripID    kernel.UUID
	InvoiceID kernel.UUID
}

// NewAcceptOfferCommandHandler creates a handler for offer acceptance.
// Requires an AcceptanceUoWFactory spanning requests, offers, trips, and
// invoices.
func NewAcceptOfferCommandHandler(uowFactory AcceptanceUoWFactory) AcceptOfferCommandHandler {
	return AcceptOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command. On success it returns the ids of
// the trip and invoice the acceptance created.
func (h *AcceptOfferCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptOfferCommand,
) (AcceptOfferResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptOfferResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptOfferResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	req, err := requestRepo.GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return AcceptOfferResult{}, err
	}

	now := time.Now().UTC()
	if err = req.Accept(now); err != nil {
		// The row lock serialized us behind another acceptance (or a
		// cancellation) that settled the request first.
		if errors.Is(err, errs.ErrIllegalTransition) {
			return AcceptOfferResult{}, errs.NewConflictingAcceptanceError(req.ID().String())
		}
		return AcceptOfferResult{}, err
	}

	offers, err := uow.OfferRepository().GetAllByRequestID(ctx, cmd.RequestID())
	if err != nil {
		return AcceptOfferResult{}, err
	}

	winner, settled, err := settleOffers(offers, cmd.OfferID())
	if err != nil {
		return AcceptOfferResult{}, err
	}

	offerRepo := uow.OfferRepository()
	for _, o := range settled {
		if err = offerRepo.Update(ctx, o); err != nil {
			return AcceptOfferResult{}, err
		}
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return AcceptOfferResult{}, err
	}

	newTrip, err := trip.NewTrip(kernel.NewUUID(), req.ID(), winner.ID(), winner.DriverID())
	if err != nil {
		return AcceptOfferResult{}, err
	}
	if err = uow.TripRepository().Add(ctx, newTrip); err != nil {
		return AcceptOfferResult{}, err
	}

	newInvoice, err := invoice.NewInvoice(kernel.NewUUID(), req.ID(), req.ClientID(), winner.Price(), now)
	if err != nil {
		return AcceptOfferResult{}, err
	}
	if err = uow.InvoiceRepository().Add(ctx, newInvoice); err != nil {
		return AcceptOfferResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptOfferResult{}, err
	}

	return AcceptOfferResult{
		TripID:    newTrip.ID(),
		InvoiceID: newInvoice.ID(),
	}, nil
}

// settleOffers accepts the winner and rejects every other pending offer.
// Returns the winner and the offers whose status changed, or an error when
// the winning offer is absent from the request's offer set or no longer
// pending. Offers settled before this transaction (expired ones) are left
// untouched.
func settleOffers(offers []*offer.Offer, winnerID kernel.UUID) (*offer.Offer, []*offer.Offer, error) {
	var winner *offer.Offer
	for _, o := range offers {
		if o.ID().IsEqual(winnerID) {
			winner = o
			break
		}
	}
	if winner == nil {
		return nil, nil, errs.NewObjectNotFoundError("offerId", winnerID.String())
	}

	if err := winner.Accept(); err != nil {
		return nil, nil, err
	}

	settled := []*offer.Offer{winner}
	for _, o := range offers {
		if o.IsEqual(winner) || o.Status() != offer.Pending {
			continue
		}
		if err := o.Reject(); err != nil {
			return nil, nil, err
		}
		settled = append(settled, o)
	}

	return winner, settled, nil
}
