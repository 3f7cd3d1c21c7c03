package request_test

import (
	"testing"

	"freightops/internal/core/domain/model/request"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  request.Status
		wantErr bool
	}{
		{"pending", request.Pending, false},
		{"offers_received", request.OffersReceived, false},
		{"accepted", request.Accepted, false},
		{"in_progress", request.InProgress, false},
		{"completed", request.Completed, false},
		{"cancelled", request.Cancelled, false},
		{"unknown_is_invalid", request.Unknown, true},
		{"out_of_range_is_invalid", request.Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", request.Pending.String())
	assert.Equal(t, "OffersReceived", request.OffersReceived.String())
	assert.Equal(t, "Accepted", request.Accepted.String())
	assert.Equal(t, "InProgress", request.InProgress.String())
	assert.Equal(t, "Completed", request.Completed.String())
	assert.Equal(t, "Cancelled", request.Cancelled.String())
	assert.Equal(t, "Unknown", request.Unknown.String())
	assert.Equal(t, "Unknown", request.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, request.Completed.IsTerminal())
	assert.True(t, request.Cancelled.IsTerminal())

	assert.False(t, request.Pending.IsTerminal())
	assert.False(t, request.OffersReceived.IsTerminal())
	assert.False(t, request.Accepted.IsTerminal())
	assert.False(t, request.InProgress.IsTerminal())
}

func TestStatus_ReceiveOffers(t *testing.T) {
	tests := []struct {
		name    string
		from    request.Status
		wantErr bool
	}{
		{"from_pending", request.Pending, false},
		{"from_offers_received", request.OffersReceived, true},
		{"from_accepted", request.Accepted, true},
		{"from_completed", request.Completed, true},
		{"from_cancelled", request.Cancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.ReceiveOffers()

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrIllegalTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, request.OffersReceived, got)
		})
	}
}

func TestStatus_Accept(t *testing.T) {
	tests := []struct {
		name    string
		from    request.Status
		wantErr bool
	}{
		{"from_pending", request.Pending, false},
		{"from_offers_received", request.OffersReceived, false},
		{"from_accepted_again", request.Accepted, true},
		{"from_in_progress", request.InProgress, true},
		{"from_completed", request.Completed, true},
		{"from_cancelled", request.Cancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Accept()

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrIllegalTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, request.Accepted, got)
		})
	}
}

func TestStatus_Start(t *testing.T) {
	got, err := request.Accepted.Start()
	require.NoError(t, err)
	assert.Equal(t, request.InProgress, got)

	_, err = request.Pending.Start()
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	_, err = request.OffersReceived.Start()
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	_, err = request.Cancelled.Start()
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestStatus_Complete(t *testing.T) {
	got, err := request.InProgress.Complete()
	require.NoError(t, err)
	assert.Equal(t, request.Completed, got)

	_, err = request.Accepted.Complete()
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
	_, err = request.Completed.Complete()
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestStatus_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		from    request.Status
		wantErr bool
	}{
		{"from_pending", request.Pending, false},
		{"from_offers_received", request.OffersReceived, false},
		{"from_accepted", request.Accepted, false},
		{"from_in_progress", request.InProgress, true},
		{"from_completed", request.Completed, true},
		{"from_cancelled_again", request.Cancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.Cancel()

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrIllegalTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, request.Cancelled, got)
		})
	}
}

func TestStatus_IllegalTransitionNamesStates(t *testing.T) {
	_, err := request.Completed.Cancel()
	require.Error(t, err)
	assert.Equal(t, "illegal state transition: request cannot move from Completed to Cancelled", err.Error())
}
