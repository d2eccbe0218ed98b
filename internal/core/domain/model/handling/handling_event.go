package handling

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
)

// ErrHandlingEventIsNotConstructed is returned when a HandlingEvent instance
// was not created through the NewHandlingEvent factory method.
var ErrHandlingEventIsNotConstructed = errors.New(
	"HandlingEvent must be created via NewHandlingEvent constructor")

// HandlingEvent is an immutable record of a single real-world handling action
// reported against a cargo: what happened (type), where (location), when it
// physically happened (completion time), and when the system learned about it
// (registration time).
//
// Invariants:
//   - Load and unload events carry a voyage number; all other types carry none
//   - Completion and registration times are always set
//   - Events are never modified after creation; a correction is a new event
//     with the same completion time and a later registration time
type HandlingEvent struct {
	id               kernel.UUID
	trackingID       kernel.TrackingID
	eventType        EventType
	location         kernel.UnLocode
	voyageNumber     *voyage.Number
	completionTime   time.Time
	registrationTime time.Time
	isConstructed    bool
}

// NewHandlingEvent creates a handling event. voyageNumber must be non-nil for
// load/unload events and nil for receive/claim/customs events; violating that
// rule is a validation failure, not a silently dropped field.
func NewHandlingEvent(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	eventType EventType,
	location kernel.UnLocode,
	voyageNumber *voyage.Number,
	completionTime time.Time,
	registrationTime time.Time,
) (*HandlingEvent, error) {
	event := &HandlingEvent{
		isConstructed: true,
	}

	if err := errors.Join(
		event.setID(id),
		event.setTrackingID(trackingID),
		event.setType(eventType),
		event.setLocation(location),
		event.setTimes(completionTime, registrationTime),
	); err != nil {
		return nil, err
	}

	// The voyage-presence rule depends on the type, so it runs after the
	// independent field validations.
	if err := event.setVoyageNumber(voyageNumber); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate ensures the HandlingEvent instance was properly constructed through
// NewHandlingEvent.
func (e *HandlingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHandlingEventIsNotConstructed
	}

	return nil
}

// IsEqual compares two handling events by their unique identifiers.
func (e *HandlingEvent) IsEqual(other *HandlingEvent) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the event's unique identifier.
func (e *HandlingEvent) ID() kernel.UUID {
	return e.id
}

// TrackingID returns the id of the cargo the event was reported against.
func (e *HandlingEvent) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// Type returns the kind of handling action the event records.
func (e *HandlingEvent) Type() EventType {
	return e.eventType
}

// Location returns the location the handling action happened at.
func (e *HandlingEvent) Location() kernel.UnLocode {
	return e.location
}

// VoyageNumber returns the voyage the cargo was loaded onto or unloaded from.
// Returns nil for receive, claim, and customs events.
func (e *HandlingEvent) VoyageNumber() *voyage.Number {
	return e.voyageNumber
}

// CompletionTime returns when the handling action physically happened.
func (e *HandlingEvent) CompletionTime() time.Time {
	return e.completionTime
}

// RegistrationTime returns when the event was registered with the system.
// Used as the audit trail and as the tie-break when two events share a
// completion time.
func (e *HandlingEvent) RegistrationTime() time.Time {
	return e.registrationTime
}

func (e *HandlingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *HandlingEvent) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	e.trackingID = trackingID
	return nil
}

func (e *HandlingEvent) setType(eventType EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *HandlingEvent) setLocation(location kernel.UnLocode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *HandlingEvent) setTimes(completionTime, registrationTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	if registrationTime.IsZero() {
		return errs.NewValueIsRequiredError("registrationTime")
	}

	e.completionTime = completionTime
	e.registrationTime = registrationTime
	return nil
}

func (e *HandlingEvent) setVoyageNumber(voyageNumber *voyage.Number) error {
	if e.eventType.RequiresVoyage() && voyageNumber == nil {
		return errs.NewValueIsRequiredErrorWithCause(
			"voyageNumber",
			fmt.Errorf("%s events happen on a voyage", e.eventType),
		)
	}
	if e.eventType.ProhibitsVoyage() && voyageNumber != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"voyageNumber",
			fmt.Errorf("%s events do not happen on a voyage", e.eventType),
		)
	}

	if voyageNumber != nil {
		if err := voyageNumber.Validate(); err != nil {
			return err
		}
		number := *voyageNumber
		e.voyageNumber = &number
	}

	return nil
}
