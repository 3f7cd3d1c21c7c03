// Package requestrepo provides data transfer objects and mapping functions
// for request persistence. Implements the repository pattern for the request
// aggregate, converting between domain entities and database rows.
package requestrepo

import (
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting request
// aggregates, indexed for querying by status.
type RequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID `gorm:"type:uuid;index"`
	Origin      string
	Destination string
	TruckType   string
	TrucksCount int

	MinManufacturingYear *int
	Notes                *string

	Status     int `gorm:"index"`
	AcceptedAt *time.Time
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts a request domain aggregate to its database representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	return RequestDTO{
		ID:                   aggregate.ID().Bytes(),
		ClientID:             aggregate.ClientID().Bytes(),
		Origin:               aggregate.Origin(),
		Destination:          aggregate.Destination(),
		TruckType:            aggregate.TruckType().String(),
		TrucksCount:          aggregate.TrucksCount(),
		MinManufacturingYear: aggregate.MinManufacturingYear(),
		Notes:                aggregate.Notes(),
		Status:               int(aggregate.Status()),
		AcceptedAt:           aggregate.AcceptedAt(),
	}
}

// toDomain converts a database DTO to a request domain aggregate using
// RestoreRequest.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	truckType, err := request.TruckTypeFromString(dto.TruckType)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		id,
		clientID,
		dto.Origin,
		dto.Destination,
		truckType,
		dto.TrucksCount,
		dto.MinManufacturingYear,
		dto.Notes,
		request.Status(dto.Status),
		dto.AcceptedAt,
	)
}
