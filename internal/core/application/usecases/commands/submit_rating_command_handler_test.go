package commands_test

import (
	"testing"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/rating"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedTrip(t *testing.T, requestID kernel.UUID) *trip.Trip {
	t.Helper()

	tr, err := trip.NewTrip(kernel.NewUUID(), requestID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	for _, s := range []trip.Status{
		trip.EnRoutePickup, trip.AtPickup, trip.Loaded,
		trip.InTransit, trip.AtDelivery, trip.Completed,
	} {
		require.NoError(t, tr.Report(s, 100))
	}
	return tr
}

func TestSubmitRatingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	tr := completedTrip(t, requestID)

	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), requestID, tr.DriverID(), kernel.NewUUID(), 5, nil,
	)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	tripRepo.On("GetByRequestID", mock.Anything, requestID).Return(tr, nil).Once()
	ratingRepo.On("GetByRequestID", mock.Anything, requestID).
		Return(nil, errs.NewObjectNotFoundError("requestId", requestID.String())).Once()
	ratingRepo.On("Add", mock.Anything, mock.AnythingOfType("*rating.Rating")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	uow.AssertExpectations(t)
	ratingRepo.AssertExpectations(t)
}

func TestSubmitRatingCommandHandler_Handle_UnfinishedTrip(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	tr, err := trip.NewTrip(kernel.NewUUID(), requestID, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), requestID, tr.DriverID(), kernel.NewUUID(), 4, nil,
	)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo).Once()
	tripRepo.On("GetByRequestID", mock.Anything, requestID).Return(tr, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitRatingCommandHandler_Handle_WrongDriver(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	tr := completedTrip(t, requestID)

	// The named driver is not the one the trip was executed by.
	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), requestID, kernel.NewUUID(), kernel.NewUUID(), 5, nil,
	)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo).Once()
	tripRepo.On("GetByRequestID", mock.Anything, requestID).Return(tr, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	ratingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitRatingCommandHandler_Handle_AlreadyRated(t *testing.T) {
	ctx := t.Context()
	requestID := kernel.NewUUID()
	tr := completedTrip(t, requestID)

	existing, err := rating.NewRating(
		kernel.NewUUID(), requestID, kernel.NewUUID(), tr.DriverID(), 3, nil, time.Now(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), requestID, tr.DriverID(), kernel.NewUUID(), 5, nil,
	)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo).Once()
	uow.On("RatingRepository").Return(ratingRepo).Once()
	tripRepo.On("GetByRequestID", mock.Anything, requestID).Return(tr, nil).Once()
	ratingRepo.On("GetByRequestID", mock.Anything, requestID).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitRatingCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	ratingRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewSubmitRatingCommand_ScoreOutOfRange(t *testing.T) {
	_, err := commands.NewSubmitRatingCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 7, nil,
	)
	require.ErrorIs(t, err, commands.ErrScoreIsOutOfRange)
}
