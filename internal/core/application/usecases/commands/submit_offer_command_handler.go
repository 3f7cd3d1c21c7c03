package commands

import (
	"context"
	"time"

	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/pkg/errs"
)

// SubmitOfferCommandHandler handles the business logic for a driver bidding
// on a request. Recording the offer and firing the first-offer reaction on
// the request happen in one transaction: an application-level reaction, not
// a store trigger, so the rule stays in inspectable code.
type SubmitOfferCommandHandler struct {
	uowFactory BiddingUoWFactory
}

// NewSubmitOfferCommandHandler creates a handler for offer submission.
// Requires a BiddingUoWFactory spanning requests and offers.
func NewSubmitOfferCommandHandler(uowFactory BiddingUoWFactory) SubmitOfferCommandHandler {
	return SubmitOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the offer submission command.
// The request row is locked so a concurrent acceptance cannot settle the
// request between the status check and the offer insert. Bidding on a
// request that already left the open states fails with IllegalTransition.
func (h *SubmitOfferCommandHandler) Handle(ctx context.Context, cmd SubmitOfferCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	req, err := requestRepo.GetForUpdate(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if req.Status() != request.Pending && req.Status() != request.OffersReceived {
		return errs.NewIllegalTransitionError(
			"request", req.Status().String(), request.OffersReceived.String(),
		)
	}

	aggregate, err := offer.NewOffer(
		cmd.OfferID(),
		cmd.RequestID(),
		cmd.DriverID(),
		cmd.Price(),
		cmd.EstimatedHours(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OfferRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if req.Status() == request.Pending {
		if err = req.ReceiveOffers(); err != nil {
			return err
		}
		if err = requestRepo.Update(ctx, req); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
