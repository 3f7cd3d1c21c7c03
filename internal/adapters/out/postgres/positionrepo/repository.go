package positionrepo

import (
	"context"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/position"

	"gorm.io/gorm"
)

// GormPositionSampleRepository implements PositionSampleRepository using
// GORM. Samples are append-only, so the repository exposes no Update or
// Delete.
type GormPositionSampleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPositionSampleRepository creates a new GORM position sample repository.
func NewGormPositionSampleRepository(db *gorm.DB, tracker aggregateTracker) *GormPositionSampleRepository {
	return &GormPositionSampleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new position sample to the database.
func (r *GormPositionSampleRepository) Add(ctx context.Context, sample *position.PositionSample) error {
	if err := sample.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sample)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(sample.ID(), sample)
	return nil
}

// GetAllByTripID retrieves every sample recorded for a trip, oldest first.
func (r *GormPositionSampleRepository) GetAllByTripID(
	ctx context.Context,
	tripID kernel.UUID,
) ([]*position.PositionSample, error) {
	if err := tripID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PositionSampleDTO
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID.Bytes()).
		Order("reported_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	samples := make([]*position.PositionSample, 0, len(dtos))
	for _, dto := range dtos {
		sample, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	return samples, nil
}
