package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
)

// EventPublisher fans out the outcome of a successfully registered handling
// event to downstream consumers. Publishing happens after the transaction
// committed and is best-effort: a publish failure is logged by the caller,
// never rolled back into the registration.
type EventPublisher interface {
	// PublishCargoHandled announces that an event was registered against a
	// cargo and what the re-derived delivery snapshot looks like.
	PublishCargoHandled(ctx context.Context, event *handling.HandlingEvent, delivery cargo.Delivery) error
}
