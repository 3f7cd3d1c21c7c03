// Package ratingrepo provides data transfer objects and mapping functions
// for rating persistence.
package ratingrepo

import (
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting rating
// aggregates. The unique index on RequestID backs the one-rating-per-request
// rule.
type RatingDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ClientID  uuid.UUID `gorm:"type:uuid"`
	DriverID  uuid.UUID `gorm:"type:uuid;index"`

	Score   int
	Comment *string

	CreatedAt time.Time
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "ratings"
}

// fromDomain converts a rating domain aggregate to its database representation.
func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:        aggregate.ID().Bytes(),
		RequestID: aggregate.RequestID().Bytes(),
		ClientID:  aggregate.ClientID().Bytes(),
		DriverID:  aggregate.DriverID().Bytes(),
		Score:     aggregate.Score(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a rating domain aggregate using
// RestoreRating.
func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(
		id,
		requestID,
		clientID,
		driverID,
		dto.Score,
		dto.Comment,
		dto.CreatedAt,
	)
}
