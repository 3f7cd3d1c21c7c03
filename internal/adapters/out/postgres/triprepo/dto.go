// Package triprepo provides data transfer objects and mapping functions
// for trip persistence.
package triprepo

import (
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates,
// indexed for lookup by request and for the active-trip scan.
type TripDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OfferID   uuid.UUID `gorm:"type:uuid"`
	DriverID  uuid.UUID `gorm:"type:uuid;index"`

	Status   int `gorm:"index"`
	Progress int

	Lat        *float64
	Lng        *float64
	ReportedAt *time.Time
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	dto := TripDTO{
		ID:         aggregate.ID().Bytes(),
		RequestID:  aggregate.RequestID().Bytes(),
		OfferID:    aggregate.OfferID().Bytes(),
		DriverID:   aggregate.DriverID().Bytes(),
		Status:     int(aggregate.Status()),
		Progress:   aggregate.Progress(),
		ReportedAt: aggregate.ReportedAt(),
	}

	if pos := aggregate.Position(); pos != nil {
		lat, lng := pos.Lat(), pos.Lng()
		dto.Lat, dto.Lng = &lat, &lng
	}

	return dto
}

// toDomain converts a database DTO to a trip domain aggregate using
// RestoreTrip.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	offerID, err := kernel.UUIDFromBytes(dto.OfferID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	var position *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, posErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if posErr != nil {
			return nil, posErr
		}
		position = &p
	}

	return trip.RestoreTrip(
		id,
		requestID,
		offerID,
		driverID,
		trip.Status(dto.Status),
		dto.Progress,
		position,
		dto.ReportedAt,
	)
}
