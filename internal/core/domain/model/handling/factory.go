package handling

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// The factory only needs narrow read access to reference data, so it accepts
// small lookup interfaces rather than full repository ports. The postgres
// repositories satisfy them.
type (
	// CargoExistence answers whether a cargo with the given tracking id is
	// known to the system.
	CargoExistence interface {
		Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
	}

	// LocationSource resolves a UN/LOCODE to a known location.
	LocationSource interface {
		Get(ctx context.Context, unLocode kernel.UnLocode) (*location.Location, error)
	}

	// VoyageSource resolves a voyage number to a known voyage.
	VoyageSource interface {
		Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)
	}
)

// HandlingEventFactory turns a handling event registration attempt into a
// well-formed, immutable HandlingEvent, or rejects it with a
// CannotCreateHandlingEventError. It enforces the combination rules - the
// tracking id, location, and (when given) voyage must resolve to known
// reference data, and the voyage presence must match the event type - but has
// no side effects beyond those lookups.
type HandlingEventFactory struct {
	cargos    CargoExistence
	locations LocationSource
	voyages   VoyageSource
}

// NewHandlingEventFactory creates a factory backed by the given reference
// data sources.
func NewHandlingEventFactory(
	cargos CargoExistence,
	locations LocationSource,
	voyages VoyageSource,
) HandlingEventFactory {
	return HandlingEventFactory{
		cargos:    cargos,
		locations: locations,
		voyages:   voyages,
	}
}

// CreateHandlingEvent validates a registration attempt and assembles the
// event. Every failure - unknown cargo, unknown location, unknown voyage, or
// a voyage-presence mismatch for the event type - is reported as a
// CannotCreateHandlingEventError; the attempt is never partially accepted.
func (f HandlingEventFactory) CreateHandlingEvent(
	ctx context.Context,
	registrationTime time.Time,
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber *voyage.Number,
	unLocode kernel.UnLocode,
	eventType EventType,
) (*HandlingEvent, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, NewCannotCreateHandlingEventError(trackingID.String(), err)
	}

	exists, err := f.cargos.Exists(ctx, trackingID)
	if err != nil {
		return nil, NewCannotCreateHandlingEventError(trackingID.String(), err)
	}
	if !exists {
		return nil, NewCannotCreateHandlingEventError(trackingID.String(), ErrUnknownCargo)
	}

	if _, err = f.locations.Get(ctx, unLocode); err != nil {
		return nil, NewCannotCreateHandlingEventError(trackingID.String(), err)
	}

	if voyageNumber != nil {
		if _, err = f.voyages.Get(ctx, *voyageNumber); err != nil {
			return nil, NewCannotCreateHandlingEventError(trackingID.String(), err)
		}
	}

	event, err := NewHandlingEvent(
		kernel.NewUUID(),
		trackingID,
		eventType,
		unLocode,
		voyageNumber,
		completionTime,
		registrationTime,
	)
	if err != nil {
		return nil, NewCannotCreateHandlingEventError(trackingID.String(), err)
	}

	return event, nil
}
