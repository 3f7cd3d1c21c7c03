package commands

import (
	"context"

	"freightops/internal/core/domain/model/trip"
)

// ReportTripProgressCommandHandler handles driver milestone reports and
// keeps the owning request's status in lockstep: the first move out of
// Assigned starts the request, and reaching Completed completes it.
// Stale reports are rejected by the trip aggregate and nothing persists.
type ReportTripProgressCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewReportTripProgressCommandHandler creates a handler for trip progress
// reports. Requires a TripUoWFactory spanning trips and requests.
func NewReportTripProgressCommandHandler(uowFactory TripUoWFactory) ReportTripProgressCommandHandler {
	return ReportTripProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the progress report command.
func (h *ReportTripProgressCommandHandler) Handle(ctx context.Context, cmd ReportTripProgressCommand) error {
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

	tripRepo := uow.TripRepository()
	tr, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return err
	}

	wasAssigned := tr.Status() == trip.Assigned
	if err = tr.Report(cmd.Status(), cmd.Progress()); err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, tr); err != nil {
		return err
	}

	started := wasAssigned && tr.Status() != trip.Assigned
	completed := tr.Status() == trip.Completed
	if started || completed {
		requestRepo := uow.RequestRepository()
		req, err := requestRepo.GetForUpdate(ctx, tr.RequestID())
		if err != nil {
			return err
		}

		if started {
			if err = req.Start(); err != nil {
				return err
			}
		}
		if completed {
			if err = req.Complete(); err != nil {
				return err
			}
		}

		if err = requestRepo.Update(ctx, req); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
