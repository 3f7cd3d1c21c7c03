package commands

import (
	"context"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/position"
)

// RecordPositionCommandHandler handles vehicle position reports. Each report
// appends a telemetry row and refreshes the trip's current coordinates.
// Out-of-order reports from a lagging device are dropped whole as stale
// updates: neither the trip nor the sample table records them.
type RecordPositionCommandHandler struct {
	uowFactory TelemetryUoWFactory
}

// NewRecordPositionCommandHandler creates a handler for position reports.
// Requires a TelemetryUoWFactory for transactional persistence.
func NewRecordPositionCommandHandler(uowFactory TelemetryUoWFactory) RecordPositionCommandHandler {
	return RecordPositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position report command.
func (h *RecordPositionCommandHandler) Handle(ctx context.Context, cmd RecordPositionCommand) error {
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

	if err = tr.RecordPosition(cmd.Position(), cmd.ReportedAt()); err != nil {
		return err
	}

	if err = tripRepo.Update(ctx, tr); err != nil {
		return err
	}

	sample, err := position.NewPositionSample(
		kernel.NewUUID(),
		tr.ID(),
		tr.DriverID(),
		cmd.Position(),
		cmd.Heading(),
		cmd.Speed(),
		cmd.ReportedAt(),
	)
	if err != nil {
		return err
	}

	if err = uow.PositionSampleRepository().Add(ctx, sample); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
