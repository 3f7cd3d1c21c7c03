package kernel_test

import (
	"testing"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{"riyadh", 24.7136, 46.6753, false},
		{"jeddah", 21.4858, 39.1925, false},
		{"boundary_north_pole", 90, 0, false},
		{"boundary_date_line", 0, -180, false},
		{"latitude_too_high", 90.1, 0, true},
		{"latitude_too_low", -91, 0, true},
		{"longitude_too_high", 0, 180.5, true},
		{"longitude_too_low", 0, -181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.lat, tt.lng)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, tt.lat, p.Lat())
			assert.Equal(t, tt.lng, p.Lng())
		})
	}
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(24.7136, 46.6753)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(24.7136, 46.6753)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(21.4858, 39.1925)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var p kernel.GeoPoint
		require.ErrorIs(t, p.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})
}
