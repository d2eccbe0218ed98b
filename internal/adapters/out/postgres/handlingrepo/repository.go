package handlingrepo

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHandlingEventRepository implements HandlingEventRepository using GORM.
type GormHandlingEventRepository struct {
	db *gorm.DB
}

// NewGormHandlingEventRepository creates a new GORM handling event repository.
func NewGormHandlingEventRepository(db *gorm.DB) *GormHandlingEventRepository {
	return &GormHandlingEventRepository{db: db}
}

// Add appends a handling event to the log.
func (r *GormHandlingEventRepository) Add(ctx context.Context, event *handling.HandlingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// HistoryOf loads the full handling history of one cargo. An unknown
// tracking id yields an empty history, not an error.
func (r *GormHandlingEventRepository) HistoryOf(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.History, error) {
	if err := trackingID.Validate(); err != nil {
		return handling.History{}, err
	}

	var dtos []HandlingEventDTO
	err := r.db.WithContext(ctx).
		Order("completion_time, registration_time").
		Find(&dtos, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		return handling.History{}, err
	}

	events := make([]*handling.HandlingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, eventErr := toDomain(dto)
		if eventErr != nil {
			return handling.History{}, eventErr
		}
		events = append(events, event)
	}

	return handling.NewHistory(events)
}
