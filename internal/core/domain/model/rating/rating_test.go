package rating_test

import (
	"testing"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/rating"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewRating(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		requestID := kernel.NewUUID()
		clientID := kernel.NewUUID()
		driverID := kernel.NewUUID()
		createdAt := time.Now().UTC()

		r, err := rating.NewRating(id, requestID, clientID, driverID, 5, ptr("on time"), createdAt)
		require.NoError(t, err)
		require.NoError(t, r.Validate())

		assert.True(t, r.ID().IsEqual(id))
		assert.True(t, r.RequestID().IsEqual(requestID))
		assert.True(t, r.ClientID().IsEqual(clientID))
		assert.True(t, r.DriverID().IsEqual(driverID))
		assert.Equal(t, 5, r.Score())
		assert.Equal(t, "on time", *r.Comment())
		assert.Equal(t, createdAt, r.CreatedAt())
	})

	tests := []struct {
		name  string
		score int
	}{
		{"score_zero", 0},
		{"score_too_high", 7},
		{"score_negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rating.NewRating(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				tt.score, nil, time.Now(),
			)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}

	t.Run("boundary_scores", func(t *testing.T) {
		for _, score := range []int{rating.MinScore, rating.MaxScore} {
			_, err := rating.NewRating(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				score, nil, time.Now(),
			)
			require.NoError(t, err)
		}
	})

	t.Run("empty_request_id", func(t *testing.T) {
		_, err := rating.NewRating(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			4, nil, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRating_Validate(t *testing.T) {
	var r rating.Rating
	require.ErrorIs(t, r.Validate(), rating.ErrRatingIsNotConstructed)
}
