package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrAssignItineraryCommandIsNotConstructed = errors.New(
	"AssignItineraryCommand must be created via NewAssignItineraryCommand constructor",
)

// AssignItineraryCommand represents a request to assign a route plan to a
// booked cargo, replacing any previous plan wholesale.
type AssignItineraryCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	itinerary  *cargo.Itinerary

	guard guard.ConstructorGuard
}

// NewAssignItineraryCommand creates a command to assign an itinerary.
// The itinerary must be present and well-formed; whether it actually serves
// the cargo's route specification is judged by the delivery derivation, not
// here - a poorly chosen plan books as MISROUTED, it does not fail.
func NewAssignItineraryCommand(
	trackingID kernel.TrackingID,
	itinerary *cargo.Itinerary,
) (AssignItineraryCommand, error) {
	command := AssignItineraryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingID(trackingID),
		command.setItinerary(itinerary),
	); err != nil {
		return AssignItineraryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignItineraryCommand) Validate() error {
	return c.guard.Validate(ErrAssignItineraryCommandIsNotConstructed)
}

// TrackingID returns the tracking id of the cargo to route.
func (c AssignItineraryCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Itinerary returns the route plan to assign.
func (c AssignItineraryCommand) Itinerary() *cargo.Itinerary {
	return c.itinerary
}

func (c *AssignItineraryCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *AssignItineraryCommand) setItinerary(itinerary *cargo.Itinerary) error {
	if itinerary == nil {
		return errs.NewValueIsRequiredError("itinerary")
	}
	if err := itinerary.Validate(); err != nil {
		return err
	}
	c.itinerary = itinerary
	return nil
}
