package commands

import (
	"context"
	"errors"
	"time"

	"freightops/internal/core/domain/model/rating"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/pkg/errs"
)

// SubmitRatingCommandHandler handles rating submission. A request can be
// rated once, by its client, for the driver who executed it, and only after
// its trip completed.
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
// Requires a RatingUoWFactory spanning ratings and trips.
func NewSubmitRatingCommandHandler(uowFactory RatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating submission command.
func (h *SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
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

	tr, err := uow.TripRepository().GetByRequestID(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if tr.Status() != trip.Completed {
		return errs.NewIllegalTransitionError("trip", tr.Status().String(), "rated")
	}

	if !tr.DriverID().IsEqual(cmd.DriverID()) {
		return errs.NewValueIsInvalidError("driver did not execute this request")
	}

	ratingRepo := uow.RatingRepository()
	existing, err := ratingRepo.GetByRequestID(ctx, cmd.RequestID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewValueIsInvalidError("request is already rated")
	}

	aggregate, err := rating.NewRating(
		cmd.RatingID(),
		cmd.RequestID(),
		cmd.ClientID(),
		cmd.DriverID(),
		cmd.Score(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = ratingRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
