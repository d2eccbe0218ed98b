package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
// A cargo is stored together with its route specification, itinerary legs,
// and the derived delivery snapshot.
type CargoRepository interface {
	// Add persists a newly booked cargo aggregate to storage.
	// The cargo must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo aggregate: a replaced
	// itinerary, a changed route specification, or a re-derived delivery.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a cargo aggregate by its tracking id.
	// Returns errs.ObjectNotFoundError when no such cargo is booked.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// Exists reports whether a cargo with the given tracking id is booked.
	// Used by the handling event factory to validate registration attempts.
	Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
}
