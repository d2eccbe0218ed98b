package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrBookCargoCommandIsNotConstructed = errors.New(
	"BookCargoCommand must be created via NewBookCargoCommand constructor",
)

// BookCargoCommand represents a request to book a new cargo for transport
// from an origin to a destination by a deadline.
//
// Example:
//
//	trackingID := kernel.NewRandomTrackingID()
//	cmd, err := NewBookCargoCommand(trackingID, origin, destination, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewBookCargoCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to book cargo: %w", err)
//	}
type BookCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewBookCargoCommand creates a command to book a new cargo. Validates that
// the tracking id and both locations are well-formed and the deadline is set;
// whether the locations exist is checked by the handler against reference
// data.
func NewBookCargoCommand(
	trackingID kernel.TrackingID,
	origin kernel.UnLocode,
	destination kernel.UnLocode,
	arrivalDeadline time.Time,
) (BookCargoCommand, error) {
	command := BookCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingID(trackingID),
		command.setLocations(origin, destination),
		command.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return BookCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BookCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookCargoCommandIsNotConstructed)
}

// TrackingID returns the tracking id the cargo will be booked under.
func (c BookCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns the location the cargo departs from.
func (c BookCargoCommand) Origin() kernel.UnLocode {
	return c.origin
}

// Destination returns the location the cargo must arrive at.
func (c BookCargoCommand) Destination() kernel.UnLocode {
	return c.destination
}

// ArrivalDeadline returns the time the cargo must arrive by.
func (c BookCargoCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *BookCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *BookCargoCommand) setLocations(origin, destination kernel.UnLocode) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	c.origin = origin
	c.destination = destination
	return nil
}

func (c *BookCargoCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	c.arrivalDeadline = arrivalDeadline
	return nil
}
