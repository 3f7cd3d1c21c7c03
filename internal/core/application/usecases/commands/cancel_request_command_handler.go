package commands

import (
	"context"
	"errors"

	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/pkg/errs"
)

// CancelRequestCommandHandler handles request withdrawal. Cancelling a
// request also rejects its remaining pending offers and, when the request
// was already accepted, abandons the assigned trip - all in one transaction.
type CancelRequestCommandHandler struct {
	uowFactory CancellationUoWFactory
}

// NewCancelRequestCommandHandler creates a handler for request cancellation.
// Requires a CancellationUoWFactory spanning requests, offers, and trips.
func NewCancelRequestCommandHandler(uowFactory CancellationUoWFactory) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// The request row is locked so cancellation serializes with a concurrent
// acceptance; whichever settles first wins.
func (h *CancelRequestCommandHandler) Handle(ctx context.Context, cmd CancelRequestCommand) error {
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

	wasAccepted := req.Status() == request.Accepted
	if err = req.Cancel(); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, req); err != nil {
		return err
	}

	offerRepo := uow.OfferRepository()
	offers, err := offerRepo.GetAllByRequestID(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	for _, o := range offers {
		if o.Status() != offer.Pending {
			continue
		}
		if err = o.Reject(); err != nil {
			return err
		}
		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if wasAccepted {
		tripRepo := uow.TripRepository()
		tr, err := tripRepo.GetByRequestID(ctx, cmd.RequestID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
		if tr != nil {
			if err = tr.Cancel(); err != nil {
				return err
			}
			if err = tripRepo.Update(ctx, tr); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
