// Package offerrepo provides data transfer objects and mapping functions
// for offer persistence.
package offerrepo

import (
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer
// aggregates, indexed for querying by request and by status.
type OfferDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;index"`
	DriverID  uuid.UUID `gorm:"type:uuid;index"`

	Price          int64
	EstimatedHours *int
	Notes          *string

	Status    int `gorm:"index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

// fromDomain converts an offer domain aggregate to its database representation.
func fromDomain(aggregate *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:             aggregate.ID().Bytes(),
		RequestID:      aggregate.RequestID().Bytes(),
		DriverID:       aggregate.DriverID().Bytes(),
		Price:          aggregate.Price(),
		EstimatedHours: aggregate.EstimatedHours(),
		Notes:          aggregate.Notes(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an offer domain aggregate using
// RestoreOffer.
func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(
		id,
		requestID,
		driverID,
		dto.Price,
		dto.EstimatedHours,
		dto.Notes,
		offer.Status(dto.Status),
		dto.CreatedAt,
	)
}
