package ratingrepo

import (
	"context"
	"errors"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/rating"
	"freightops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
// Ratings are immutable, so the repository exposes no Update.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating to the database.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rating by ID.
func (r *GormRatingRepository) Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRequestID retrieves the rating recorded for the given request.
func (r *GormRatingRepository) GetByRequestID(ctx context.Context, requestID kernel.UUID) (*rating.Rating, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "request_id = ?", requestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating for request", requestID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every rating.
func (r *GormRatingRepository) GetAll(ctx context.Context) ([]*rating.Rating, error) {
	var dtos []RatingDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, aggregate)
	}

	return ratings, nil
}
