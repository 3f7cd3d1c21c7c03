package commands_test

import (
	"testing"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/position"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordPositionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	tr, err := trip.NewTrip(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), driverID)
	require.NoError(t, err)

	pos, err := kernel.NewGeoPoint(24.7136, 46.6753)
	require.NoError(t, err)

	heading := 180.0
	speed := 92.5
	reportedAt := time.Now().UTC()
	cmd, err := commands.NewRecordPositionCommand(tr.ID(), pos, &heading, &speed, reportedAt)
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	sampleRepo := new(MockPositionSampleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo).Once()
	tripRepo.On("Get", mock.Anything, tr.ID()).Return(tr, nil).Once()
	tripRepo.On("Update", mock.Anything, tr).Return(nil).Once()
	uow.On("PositionSampleRepository").Return(sampleRepo).Once()
	sampleRepo.On("Add", mock.Anything, mock.AnythingOfType("*position.PositionSample")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTelemetryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPositionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, tr.Position())
	assert.True(t, tr.Position().IsEqual(pos))

	sample := sampleRepo.Calls[0].Arguments.Get(1).(*position.PositionSample)
	assert.True(t, sample.TripID().IsEqual(tr.ID()))
	assert.True(t, sample.DriverID().IsEqual(driverID))
	assert.True(t, sample.Point().IsEqual(pos))
	require.NotNil(t, sample.Heading())
	assert.InDelta(t, heading, *sample.Heading(), 0.0001)
	require.NotNil(t, sample.Speed())
	assert.InDelta(t, speed, *sample.Speed(), 0.0001)
	assert.True(t, sample.ReportedAt().Equal(reportedAt))
}

func TestRecordPositionCommandHandler_Handle_StaleReportDropped(t *testing.T) {
	ctx := t.Context()
	tr, err := trip.NewTrip(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	jeddah, err := kernel.NewGeoPoint(21.4858, 39.1925)
	require.NoError(t, err)
	now := time.Now().UTC()
	require.NoError(t, tr.RecordPosition(jeddah, now))

	riyadh, err := kernel.NewGeoPoint(24.7136, 46.6753)
	require.NoError(t, err)
	cmd, err := commands.NewRecordPositionCommand(tr.ID(), riyadh, nil, nil, now.Add(-time.Minute))
	require.NoError(t, err)

	tripRepo := new(MockTripRepository)
	sampleRepo := new(MockPositionSampleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TripRepository").Return(tripRepo).Once()
	tripRepo.On("Get", mock.Anything, tr.ID()).Return(tr, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTelemetryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordPositionCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStaleUpdate)
	tripRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	sampleRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	assert.True(t, tr.Position().IsEqual(jeddah))
}
