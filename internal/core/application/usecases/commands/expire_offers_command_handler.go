package commands

import (
	"context"
)

// ExpireOffersCommandHandler settles aged pending offers as Expired.
// Invoked periodically by the offer expiry job.
type ExpireOffersCommandHandler struct {
	uowFactory OfferUoWFactory
}

// NewExpireOffersCommandHandler creates a handler for the expiry sweep.
// Requires an OfferUoWFactory for transactional persistence.
func NewExpireOffersCommandHandler(uowFactory OfferUoWFactory) ExpireOffersCommandHandler {
	return ExpireOffersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep command.
func (h *ExpireOffersCommandHandler) Handle(ctx context.Context, cmd ExpireOffersCommand) error {
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

	offerRepo := uow.OfferRepository()
	offers, err := offerRepo.GetAllPendingOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	for _, o := range offers {
		if err = o.Expire(); err != nil {
			return err
		}
		if err = offerRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
