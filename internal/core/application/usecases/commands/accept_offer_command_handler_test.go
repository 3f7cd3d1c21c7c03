package commands_test

import (
	"testing"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/invoice"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/offer"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openRequestWithOffers(t *testing.T, prices ...int64) (*request.Request, []*offer.Offer) {
	t.Helper()

	req := pendingRequest(t)
	require.NoError(t, req.ReceiveOffers())

	offers := make([]*offer.Offer, 0, len(prices))
	for _, price := range prices {
		o, err := offer.NewOffer(
			kernel.NewUUID(), req.ID(), kernel.NewUUID(), price, nil, nil, time.Now().UTC(),
		)
		require.NoError(t, err)
		offers = append(offers, o)
	}
	return req, offers
}

func TestAcceptOfferCommandHandler_Handle_SettlesEverythingAtomically(t *testing.T) {
	ctx := t.Context()
	req, offers := openRequestWithOffers(t, 3000, 4500, 5000)
	winner := offers[0]

	cmd, err := commands.NewAcceptOfferCommand(req.ID(), winner.ID())
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	offerRepo := new(MockOfferRepository)
	tripRepo := new(MockTripRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	uow.On("OfferRepository").Return(offerRepo).Twice()
	uow.On("TripRepository").Return(tripRepo).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()

	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	offerRepo.On("GetAllByRequestID", mock.Anything, req.ID()).Return(offers, nil).Once()
	offerRepo.On("Update", mock.Anything, mock.AnythingOfType("*offer.Offer")).Return(nil).Times(3)
	requestRepo.On("Update", mock.Anything, req).Return(nil).Once()
	tripRepo.On("Add", mock.Anything, mock.AnythingOfType("*trip.Trip")).Return(nil).Once()
	invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory)
	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, request.Accepted, req.Status())
	require.NotNil(t, req.AcceptedAt())
	assert.Equal(t, offer.Accepted, winner.Status())
	assert.Equal(t, offer.Rejected, offers[1].Status())
	assert.Equal(t, offer.Rejected, offers[2].Status())

	// The result carries the ids of the records the acceptance persisted.
	newTrip := tripRepo.Calls[0].Arguments.Get(1).(*trip.Trip)
	newInvoice := invoiceRepo.Calls[0].Arguments.Get(1).(*invoice.Invoice)
	assert.True(t, res.TripID.IsEqual(newTrip.ID()))
	assert.True(t, res.InvoiceID.IsEqual(newInvoice.ID()))

	requestRepo.AssertExpectations(t)
	offerRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOfferCommandHandler_Handle_LoserGetsConflict(t *testing.T) {
	ctx := t.Context()
	req, offers := openRequestWithOffers(t, 3000, 4500)

	// A rival acceptance already settled the request; this handler call is
	// the loser waking up after the row lock was released.
	require.NoError(t, req.Accept(time.Now()))

	cmd, err := commands.NewAcceptOfferCommand(req.ID(), offers[1].ID())
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflictingAcceptance)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestAcceptOfferCommandHandler_Handle_CancelledRequestGetsConflict(t *testing.T) {
	ctx := t.Context()
	req, offers := openRequestWithOffers(t, 3000)
	require.NoError(t, req.Cancel())

	cmd, err := commands.NewAcceptOfferCommand(req.ID(), offers[0].ID())
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflictingAcceptance)
}

func TestAcceptOfferCommandHandler_Handle_WinnerNotOnRequest(t *testing.T) {
	ctx := t.Context()
	req, offers := openRequestWithOffers(t, 3000)
	strangerOfferID := kernel.NewUUID()

	cmd, err := commands.NewAcceptOfferCommand(req.ID(), strangerOfferID)
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	uow.On("OfferRepository").Return(offerRepo).Once()
	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	offerRepo.On("GetAllByRequestID", mock.Anything, req.ID()).Return(offers, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	// Nothing was persisted for the failed acceptance.
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, offer.Pending, offers[0].Status())
}

func TestAcceptOfferCommandHandler_Handle_ExpiredOffersStayExpired(t *testing.T) {
	ctx := t.Context()
	req, offers := openRequestWithOffers(t, 3000, 4500)
	require.NoError(t, offers[1].Expire())
	winner := offers[0]

	cmd, err := commands.NewAcceptOfferCommand(req.ID(), winner.ID())
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	offerRepo := new(MockOfferRepository)
	tripRepo := new(MockTripRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RequestRepository").Return(requestRepo).Once()
	uow.On("OfferRepository").Return(offerRepo).Twice()
	uow.On("TripRepository").Return(tripRepo).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo).Once()

	requestRepo.On("GetForUpdate", mock.Anything, req.ID()).Return(req, nil).Once()
	offerRepo.On("GetAllByRequestID", mock.Anything, req.ID()).Return(offers, nil).Once()
	// Only the winner changed; the expired offer is left untouched.
	offerRepo.On("Update", mock.Anything, winner).Return(nil).Once()
	requestRepo.On("Update", mock.Anything, req).Return(nil).Once()
	tripRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	invoiceRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAcceptanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOfferCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, offer.Expired, offers[1].Status())
	offerRepo.AssertExpectations(t)
}
