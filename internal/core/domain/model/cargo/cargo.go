package cargo

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrCargoIsNotConstructed is returned when a Cargo instance was not created
// through the NewCargo or RestoreCargo constructors. This ensures all cargos
// are properly validated.
var ErrCargoIsNotConstructed = errors.New(
	"Cargo must be created via NewCargo or RestoreCargo constructor")

// Cargo is the aggregate root of the tracking model. It binds an immutable
// tracking id to a route specification, an optional itinerary, and the
// derived Delivery snapshot.
//
// Cargo follows these invariants:
//   - Tracking id is globally unique and never changes
//   - The itinerary is replaced wholesale, never edited leg by leg
//   - The delivery snapshot is always re-derived from (route specification,
//     itinerary, handling history), never set by callers
//   - Can only be created through NewCargo or RestoreCargo
//
// Handling events are owned by an external event log keyed by tracking id;
// the cargo references its history but does not own it, so every mutation
// takes the history snapshot the caller loaded alongside the aggregate.
type Cargo struct {
	// trackingID is the unique identifier the cargo is tracked by
	trackingID kernel.TrackingID

	// routeSpecification is where the cargo goes and by when
	routeSpecification RouteSpecification

	// itinerary is the assigned route plan (nil while not routed)
	itinerary *Itinerary

	// delivery is the derived tracking snapshot
	delivery Delivery

	// guard ensures the cargo was created via a constructor
	guard guard.ConstructorGuard
}

// NewCargo books a new cargo for the given route. The cargo starts with no
// itinerary and a delivery derived from an empty history: not received, not
// routed, nothing known about it yet.
func NewCargo(trackingID kernel.TrackingID, routeSpecification RouteSpecification) (*Cargo, error) {
	cargo := &Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	cargo.delivery = DeriveDelivery(routeSpecification, nil, handling.EmptyHistory(), nil)
	return cargo, nil
}

// RestoreCargo reconstructs a cargo from persisted state, including its
// itinerary and the delivery snapshot that was stored with it. The restored
// cargo behaves identically to one that reached this state through normal
// domain operations.
func RestoreCargo(
	trackingID kernel.TrackingID,
	routeSpecification RouteSpecification,
	itinerary *Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	cargo := &Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setRouteSpecification(routeSpecification),
		itinerary.Validate(),
		delivery.Validate(),
	); err != nil {
		return nil, err
	}

	cargo.itinerary = itinerary
	cargo.delivery = delivery
	return cargo, nil
}

// Validate ensures the Cargo instance was properly constructed through
// NewCargo or RestoreCargo.
func (c *Cargo) Validate() error {
	if c == nil {
		return ErrCargoIsNotConstructed
	}
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

// IsEqual compares two cargos by their tracking ids.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}

// TrackingID returns the cargo's unique tracking identifier.
func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// RouteSpecification returns where the cargo goes and by when.
func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

// Itinerary returns the assigned route plan, or nil while the cargo is not
// routed.
func (c *Cargo) Itinerary() *Itinerary {
	return c.itinerary
}

// Delivery returns the current derived tracking snapshot.
func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// AssignItinerary replaces the cargo's route plan and re-derives the
// delivery snapshot against the given handling history.
//
// A new plan forgives past deviation: the previous delivery's misrouted
// state is not carried over, so a cargo that strayed from its old itinerary
// becomes ROUTED again if the new itinerary accounts for where it actually
// is.
func (c *Cargo) AssignItinerary(itinerary *Itinerary, history handling.History) error {
	if itinerary == nil {
		return errs.NewValueIsRequiredError("itinerary")
	}
	if err := itinerary.Validate(); err != nil {
		return err
	}

	c.itinerary = itinerary
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history, nil)
	return nil
}

// DeriveDeliveryProgress re-derives the delivery snapshot after new handling
// events were recorded. The caller supplies the full history it loaded; the
// update is atomic from the caller's point of view.
func (c *Cargo) DeriveDeliveryProgress(history handling.History) {
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history, &c.delivery)
}

// ChangeDestination points the cargo at a new destination and re-derives the
// delivery snapshot. The existing itinerary is kept; if it no longer reaches
// the new destination the cargo becomes MISROUTED until a new itinerary is
// assigned.
func (c *Cargo) ChangeDestination(destination kernel.UnLocode, history handling.History) error {
	routeSpecification, err := c.routeSpecification.WithDestination(destination)
	if err != nil {
		return err
	}

	c.routeSpecification = routeSpecification
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history, &c.delivery)
	return nil
}

// ChangeDeadline moves the cargo's arrival deadline and re-derives the
// delivery snapshot. Tightening the deadline past the itinerary's final
// arrival makes the cargo MISROUTED.
func (c *Cargo) ChangeDeadline(arrivalDeadline time.Time, history handling.History) error {
	routeSpecification, err := c.routeSpecification.WithArrivalDeadline(arrivalDeadline)
	if err != nil {
		return err
	}

	c.routeSpecification = routeSpecification
	c.delivery = DeriveDelivery(c.routeSpecification, c.itinerary, history, &c.delivery)
	return nil
}

func (c *Cargo) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *Cargo) setRouteSpecification(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return err
	}
	c.routeSpecification = routeSpecification
	return nil
}
