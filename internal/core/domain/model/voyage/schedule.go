package voyage

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrCarrierMovementIsNotConstructed is returned when attempting to use an
	// improperly initialized CarrierMovement.
	ErrCarrierMovementIsNotConstructed = errs.NewValueIsRequiredError(
		"carrier movement must be created via NewCarrierMovement constructor")

	// ErrScheduleIsNotConstructed is returned when attempting to use an improperly
	// initialized Schedule.
	ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError(
		"schedule must be created via NewSchedule constructor")
)

// CarrierMovement is a vessel movement from one location to another: one hop
// of a voyage's schedule. Immutable value object.
type CarrierMovement struct {
	departureLocation kernel.UnLocode
	arrivalLocation   kernel.UnLocode
	departureTime     time.Time
	arrivalTime       time.Time
	guard             guard.ConstructorGuard
}

// NewCarrierMovement creates a carrier movement between two locations.
// Departure must precede arrival and both locations must be valid.
func NewCarrierMovement(
	departureLocation kernel.UnLocode,
	arrivalLocation kernel.UnLocode,
	departureTime time.Time,
	arrivalTime time.Time,
) (CarrierMovement, error) {
	movement := CarrierMovement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		movement.setLocations(departureLocation, arrivalLocation),
		movement.setTimes(departureTime, arrivalTime),
	); err != nil {
		return CarrierMovement{}, err
	}

	return movement, nil
}

// Validate checks if the CarrierMovement was properly constructed.
func (m CarrierMovement) Validate() error {
	return m.guard.Validate(ErrCarrierMovementIsNotConstructed)
}

// DepartureLocation returns the location the carrier departs from.
func (m CarrierMovement) DepartureLocation() kernel.UnLocode {
	return m.departureLocation
}

// ArrivalLocation returns the location the carrier arrives at.
func (m CarrierMovement) ArrivalLocation() kernel.UnLocode {
	return m.arrivalLocation
}

// DepartureTime returns the scheduled departure time.
func (m CarrierMovement) DepartureTime() time.Time {
	return m.departureTime
}

// ArrivalTime returns the scheduled arrival time.
func (m CarrierMovement) ArrivalTime() time.Time {
	return m.arrivalTime
}

func (m *CarrierMovement) setLocations(departure, arrival kernel.UnLocode) error {
	if err := errors.Join(departure.Validate(), arrival.Validate()); err != nil {
		return err
	}

	m.departureLocation = departure
	m.arrivalLocation = arrival
	return nil
}

func (m *CarrierMovement) setTimes(departure, arrival time.Time) error {
	if departure.IsZero() || arrival.IsZero() {
		return errs.NewValueIsRequiredError("departureTime and arrivalTime")
	}
	if !departure.Before(arrival) {
		return errs.NewValueIsInvalidErrorWithCause(
			"carrierMovement",
			fmt.Errorf("departure %s is not before arrival %s", departure, arrival),
		)
	}

	m.departureTime = departure
	m.arrivalTime = arrival
	return nil
}

// Schedule is the ordered, non-empty sequence of carrier movements a voyage
// performs. Movements are ordered by departure time. Immutable value object.
type Schedule struct {
	movements []CarrierMovement
	guard     guard.ConstructorGuard
}

// NewSchedule creates a schedule from a non-empty sequence of carrier
// movements. Movements must already be ordered by departure time.
func NewSchedule(movements []CarrierMovement) (Schedule, error) {
	if len(movements) == 0 {
		return Schedule{}, errs.NewValueIsRequiredError("carrierMovements")
	}

	for i, movement := range movements {
		if err := movement.Validate(); err != nil {
			return Schedule{}, err
		}
		if i > 0 && movement.DepartureTime().Before(movements[i-1].DepartureTime()) {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause(
				"carrierMovements",
				fmt.Errorf("movement %d departs before movement %d", i, i-1),
			)
		}
	}

	return Schedule{
		movements: append([]CarrierMovement(nil), movements...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Schedule was properly constructed via NewSchedule.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// CarrierMovements returns a copy of the ordered carrier movements.
func (s Schedule) CarrierMovements() []CarrierMovement {
	return append([]CarrierMovement(nil), s.movements...)
}
