package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageRepository defines the persistence contract for voyage reference
// data: voyage numbers and their carrier movement schedules.
type VoyageRepository interface {
	// Add persists a voyage with its schedule.
	Add(ctx context.Context, v *voyage.Voyage) error

	// Get retrieves a voyage by its number.
	// Returns errs.ObjectNotFoundError when the number is unknown.
	Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)
}
