package cargo

import (
	"errors"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrHandlingActivityIsNotConstructed is returned when attempting to use an
// improperly initialized HandlingActivity.
var ErrHandlingActivityIsNotConstructed = errs.NewValueIsRequiredError(
	"handling activity must be created via NewHandlingActivity constructor")

// HandlingActivity is a handling step the plan expects next: an event type at
// a location, on a voyage when the type happens on one. Immutable value
// object; the delivery derivation produces it, nobody else does.
type HandlingActivity struct {
	eventType    handling.EventType
	location     kernel.UnLocode
	voyageNumber *voyage.Number
	guard        guard.ConstructorGuard
}

// NewHandlingActivity creates an expected activity for an event type that
// happens ashore (receive, unload at destination, claim, customs).
func NewHandlingActivity(
	eventType handling.EventType,
	location kernel.UnLocode,
) (HandlingActivity, error) {
	return newHandlingActivity(eventType, location, nil)
}

// NewVoyageHandlingActivity creates an expected activity for an event type
// that happens on a voyage (load, unload).
func NewVoyageHandlingActivity(
	eventType handling.EventType,
	location kernel.UnLocode,
	voyageNumber voyage.Number,
) (HandlingActivity, error) {
	return newHandlingActivity(eventType, location, &voyageNumber)
}

func newHandlingActivity(
	eventType handling.EventType,
	location kernel.UnLocode,
	voyageNumber *voyage.Number,
) (HandlingActivity, error) {
	if err := errors.Join(eventType.Validate(), location.Validate()); err != nil {
		return HandlingActivity{}, err
	}
	if voyageNumber != nil {
		if err := voyageNumber.Validate(); err != nil {
			return HandlingActivity{}, err
		}
		number := *voyageNumber
		voyageNumber = &number
	}

	return HandlingActivity{
		eventType:    eventType,
		location:     location,
		voyageNumber: voyageNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the HandlingActivity was properly constructed.
func (a HandlingActivity) Validate() error {
	return a.guard.Validate(ErrHandlingActivityIsNotConstructed)
}

// Type returns the expected event type.
func (a HandlingActivity) Type() handling.EventType {
	return a.eventType
}

// Location returns the location the activity is expected at.
func (a HandlingActivity) Location() kernel.UnLocode {
	return a.location
}

// VoyageNumber returns the voyage the activity is expected on, or nil for
// activities that happen ashore.
func (a HandlingActivity) VoyageNumber() *voyage.Number {
	if a.voyageNumber == nil {
		return nil
	}
	number := *a.voyageNumber
	return &number
}

// IsEqual compares two activities by type, location, and voyage.
func (a HandlingActivity) IsEqual(other HandlingActivity) bool {
	if a.eventType != other.eventType || !a.location.IsEqual(other.location) {
		return false
	}
	if (a.voyageNumber == nil) != (other.voyageNumber == nil) {
		return false
	}
	return a.voyageNumber == nil || a.voyageNumber.IsEqual(*other.voyageNumber)
}
