package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrRouteSpecificationIsNotConstructed is returned when attempting to use an
// improperly initialized RouteSpecification.
var ErrRouteSpecificationIsNotConstructed = errs.NewValueIsRequiredError(
	"route specification must be created via NewRouteSpecification constructor")

// RouteSpecification describes where a cargo goes and by when: origin,
// destination, and arrival deadline. Immutable value object; destination and
// deadline changes produce a new specification.
type RouteSpecification struct {
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time
	guard           guard.ConstructorGuard
}

// NewRouteSpecification creates a route specification. Origin and destination
// must be distinct valid locations and the deadline must be set.
func NewRouteSpecification(
	origin kernel.UnLocode,
	destination kernel.UnLocode,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	spec := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setLocations(origin, destination),
		spec.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	return spec, nil
}

// Validate checks if the RouteSpecification was properly constructed.
func (s RouteSpecification) Validate() error {
	return s.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

// Origin returns the location the cargo departs from.
func (s RouteSpecification) Origin() kernel.UnLocode {
	return s.origin
}

// Destination returns the location the cargo must arrive at.
func (s RouteSpecification) Destination() kernel.UnLocode {
	return s.destination
}

// ArrivalDeadline returns the time the cargo must arrive by.
func (s RouteSpecification) ArrivalDeadline() time.Time {
	return s.arrivalDeadline
}

// WithDestination returns a copy of the specification routed to a new
// destination. The new destination must be distinct from the origin.
func (s RouteSpecification) WithDestination(destination kernel.UnLocode) (RouteSpecification, error) {
	return NewRouteSpecification(s.origin, destination, s.arrivalDeadline)
}

// WithArrivalDeadline returns a copy of the specification with a new arrival
// deadline.
func (s RouteSpecification) WithArrivalDeadline(arrivalDeadline time.Time) (RouteSpecification, error) {
	return NewRouteSpecification(s.origin, s.destination, arrivalDeadline)
}

// IsSatisfiedBy reports whether the itinerary serves the specification: it
// departs from the origin, arrives at the destination, and does so before
// the arrival deadline. A nil itinerary satisfies nothing.
func (s RouteSpecification) IsSatisfiedBy(itinerary *Itinerary) bool {
	departure, ok := itinerary.InitialDepartureLocation()
	if !ok {
		return false
	}
	arrival, _ := itinerary.FinalArrivalLocation()
	arrivalTime, _ := itinerary.FinalArrivalTime()

	return s.origin.IsEqual(departure) &&
		s.destination.IsEqual(arrival) &&
		arrivalTime.Before(s.arrivalDeadline)
}

func (s *RouteSpecification) setLocations(origin, destination kernel.UnLocode) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return errs.NewValueIsInvalidErrorWithCause(
			"destination",
			fmt.Errorf("origin and destination are both %s", origin),
		)
	}

	s.origin = origin
	s.destination = destination
	return nil
}

func (s *RouteSpecification) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	s.arrivalDeadline = arrivalDeadline
	return nil
}
