package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLegIsNotConstructed is returned when attempting to use an improperly
// initialized Leg.
var ErrLegIsNotConstructed = errs.NewValueIsRequiredError(
	"leg must be created via NewLeg constructor")

// Leg is one voyage segment of a planned itinerary: the cargo is loaded onto
// the voyage at the load location and unloaded at the unload location.
// Immutable value object.
type Leg struct {
	voyageNumber   voyage.Number
	loadLocation   kernel.UnLocode
	unloadLocation kernel.UnLocode
	loadTime       time.Time
	unloadTime     time.Time
	guard          guard.ConstructorGuard
}

// NewLeg creates a leg. The load time must precede the unload time and all
// identities must be valid.
func NewLeg(
	voyageNumber voyage.Number,
	loadLocation kernel.UnLocode,
	unloadLocation kernel.UnLocode,
	loadTime time.Time,
	unloadTime time.Time,
) (Leg, error) {
	leg := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leg.setVoyageNumber(voyageNumber),
		leg.setLocations(loadLocation, unloadLocation),
		leg.setTimes(loadTime, unloadTime),
	); err != nil {
		return Leg{}, err
	}

	return leg, nil
}

// Validate checks if the Leg was properly constructed.
func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// VoyageNumber returns the voyage the leg travels on.
func (l Leg) VoyageNumber() voyage.Number {
	return l.voyageNumber
}

// LoadLocation returns the location the cargo is loaded at.
func (l Leg) LoadLocation() kernel.UnLocode {
	return l.loadLocation
}

// UnloadLocation returns the location the cargo is unloaded at.
func (l Leg) UnloadLocation() kernel.UnLocode {
	return l.unloadLocation
}

// LoadTime returns the scheduled load time.
func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadTime returns the scheduled unload time.
func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

func (l *Leg) setVoyageNumber(voyageNumber voyage.Number) error {
	if err := voyageNumber.Validate(); err != nil {
		return err
	}
	l.voyageNumber = voyageNumber
	return nil
}

func (l *Leg) setLocations(loadLocation, unloadLocation kernel.UnLocode) error {
	if err := errors.Join(loadLocation.Validate(), unloadLocation.Validate()); err != nil {
		return err
	}

	l.loadLocation = loadLocation
	l.unloadLocation = unloadLocation
	return nil
}

func (l *Leg) setTimes(loadTime, unloadTime time.Time) error {
	if loadTime.IsZero() || unloadTime.IsZero() {
		return errs.NewValueIsRequiredError("loadTime and unloadTime")
	}
	if !loadTime.Before(unloadTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"leg",
			fmt.Errorf("load time %s is not before unload time %s", loadTime, unloadTime),
		)
	}

	l.loadTime = loadTime
	l.unloadTime = unloadTime
	return nil
}
