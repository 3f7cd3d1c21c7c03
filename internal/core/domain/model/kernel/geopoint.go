package kernel

import (
	"fmt"

	"freightops/internal/pkg/errs"
)

// Latitude and longitude bounds in decimal degrees.
const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when validating a GeoPoint that was
// not created through NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")

// GeoPoint is a value object holding a WGS84 coordinate pair.
// It appears on trips (current position) and on position samples reported by
// driver telemetry. GeoPoint is immutable: operations that change a
// coordinate produce a new value.
//
// The zero value is invalid; use NewGeoPoint.
type GeoPoint struct {
	lat float64
	lng float64

	isConstructed bool
}

// NewGeoPoint creates a validated coordinate pair.
// Latitude must lie in [-90, 90] and longitude in [-180, 180].
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < minLatitude || lat > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, minLatitude, maxLatitude)
	}
	if lng < minLongitude || lng > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lng, minLongitude, maxLongitude)
	}

	return GeoPoint{lat: lat, lng: lng, isConstructed: true}, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two points by exact coordinate equality.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String renders the point as "lat,lng" for logs.
func (p GeoPoint) String() string {
	return fmt.Sprintf("%f,%f", p.lat, p.lng)
}

// Validate ensures the point was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	if !p.isConstructed {
		return ErrGeoPointIsNotConstructed
	}
	return nil
}
