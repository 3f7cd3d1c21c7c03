package commands

import (
	"context"

	"freightops/internal/core/domain/model/request"
)

// SubmitRequestCommandHandler handles the business logic for posting a new
// transport request. The request starts in Pending status and waits for
// driver offers.
type SubmitRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewSubmitRequestCommandHandler creates a handler for request submission.
// Requires a RequestUoWFactory for transactional persistence.
func NewSubmitRequestCommandHandler(uowFactory RequestUoWFactory) SubmitRequestCommandHandler {
	return SubmitRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request submission command.
// Creates the request in Pending status inside a transaction.
func (h *SubmitRequestCommandHandler) Handle(ctx context.Context, cmd SubmitRequestCommand) error {
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
	aggregate, err := request.NewRequest(
		cmd.RequestID(),
		cmd.ClientID(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.TruckType(),
		cmd.TrucksCount(),
		cmd.MinManufacturingYear(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = requestRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
