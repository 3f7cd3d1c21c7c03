// Package positionrepo provides data transfer objects and mapping functions
// for position sample persistence.
package positionrepo

import (
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/position"

	"github.com/google/uuid"
)

// PositionSampleDTO represents the database structure for persisting
// position samples. Rows are append-only telemetry.
type PositionSampleDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID   uuid.UUID `gorm:"type:uuid;index"`
	DriverID uuid.UUID `gorm:"type:uuid;index"`

	Lat     float64
	Lng     float64
	Heading *float64
	Speed   *float64

	ReportedAt time.Time
}

// TableName specifies the database table name for position samples.
func (PositionSampleDTO) TableName() string {
	return "position_samples"
}

// fromDomain converts a position sample to its database representation.
func fromDomain(sample *position.PositionSample) PositionSampleDTO {
	return PositionSampleDTO{
		ID:         sample.ID().Bytes(),
		TripID:     sample.TripID().Bytes(),
		DriverID:   sample.DriverID().Bytes(),
		Lat:        sample.Point().Lat(),
		Lng:        sample.Point().Lng(),
		Heading:    sample.Heading(),
		Speed:      sample.Speed(),
		ReportedAt: sample.ReportedAt(),
	}
}

// toDomain converts a database DTO to a position sample using
// RestorePositionSample.
func toDomain(dto PositionSampleDTO) (*position.PositionSample, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tripID, err := kernel.UUIDFromBytes(dto.TripID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return position.RestorePositionSample(
		id,
		tripID,
		driverID,
		point,
		dto.Heading,
		dto.Speed,
		dto.ReportedAt,
	)
}
