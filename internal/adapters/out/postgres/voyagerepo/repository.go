package voyagerepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoyageRepository implements VoyageRepository using GORM.
type GormVoyageRepository struct {
	db *gorm.DB
}

// NewGormVoyageRepository creates a new GORM voyage repository.
func NewGormVoyageRepository(db *gorm.DB) *GormVoyageRepository {
	return &GormVoyageRepository{db: db}
}

// Add saves a new voyage with its schedule to the database.
func (r *GormVoyageRepository) Add(ctx context.Context, v *voyage.Voyage) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a voyage by its number, with movements in schedule order.
func (r *GormVoyageRepository) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_index")
		}).
		First(&dto, "number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voyage", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
