package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// HandlingEventRepository defines the persistence contract for the handling
// event log. The log is append-only: events are facts and are never updated
// or deleted; corrections are recorded as new events.
type HandlingEventRepository interface {
	// Add appends a handling event to the log.
	Add(ctx context.Context, event *handling.HandlingEvent) error

	// HistoryOf loads the full handling history of one cargo. An unknown
	// tracking id yields an empty history, not an error.
	HistoryOf(ctx context.Context, trackingID kernel.TrackingID) (handling.History, error)
}
