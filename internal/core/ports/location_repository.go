package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for location reference
// data. Locations are seeded, read-only to the tracking flows.
type LocationRepository interface {
	// Add persists a location. Used by seeding and back-office flows.
	Add(ctx context.Context, loc *location.Location) error

	// Get retrieves a location by its UN/LOCODE.
	// Returns errs.ObjectNotFoundError when the code is unknown.
	Get(ctx context.Context, unLocode kernel.UnLocode) (*location.Location, error)

	// GetAll retrieves all known locations.
	GetAll(ctx context.Context) ([]*location.Location, error)
}
