package commands_test

import (
	"testing"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingRequest(t *testing.T) *request.Request {
	t.Helper()

	r, err := request.NewRequest(
		kernel.NewUUID(), kernel.NewUUID(),
		"Riyadh", "Jeddah", request.TruckFlatbed, 1, nil, nil,
	)
	require.NoError(t, err)
	return r
}

func submitOfferCommand(t *testing.T, requestID kernel.UUID) commands.SubmitOfferCommand {
	t.Helper()

	cmd, err := commands.NewSubmitOfferCommand(
		kernel.NewUUID(), requestID, kernel.NewUUID(), 3000, nil, nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestSubmitOfferCommandHandler_Handle_FirstOfferMovesRequest(t *testing.T) {
	ctx := t.Context()
	req := pendingRequest(t)
	cmd := submitOfferCommand(t, req.ID())

	requestRepo := new(MockRequestRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	uow.On("OfferRepository").Return(offerRepo).Once()
	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	offerRepo.On("Add", mock.Anything, mock.AnythingOfType("*offer.Offer")).Return(nil).Once()
	requestRepo.On("Update", mock.Anything, req).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOfferCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, request.OffersReceived, req.Status())
	requestRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitOfferCommandHandler_Handle_SubsequentOfferSkipsRequestUpdate(t *testing.T) {
	ctx := t.Context()
	req := pendingRequest(t)
	require.NoError(t, req.ReceiveOffers())
	cmd := submitOfferCommand(t, req.ID())

	requestRepo := new(MockRequestRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	uow.On("OfferRepository").Return(offerRepo).Once()
	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	offerRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOfferCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSubmitOfferCommandHandler_Handle_SettledRequestRejectsBids(t *testing.T) {
	ctx := t.Context()
	req := pendingRequest(t)
	require.NoError(t, req.ReceiveOffers())
	require.NoError(t, req.Accept(time.Now()))
	cmd := submitOfferCommand(t, req.ID())

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOfferCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
