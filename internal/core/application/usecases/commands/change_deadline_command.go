package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrChangeDeadlineCommandIsNotConstructed = errors.New(
	"ChangeDeadlineCommand must be created via NewChangeDeadlineCommand constructor",
)

// ChangeDeadlineCommand represents a request to move a cargo's arrival
// deadline. Tightening the deadline past the itinerary's final arrival
// makes the cargo MISROUTED.
type ChangeDeadlineCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewChangeDeadlineCommand creates a command to change a cargo's arrival
// deadline.
func NewChangeDeadlineCommand(
	trackingID kernel.TrackingID,
	arrivalDeadline time.Time,
) (ChangeDeadlineCommand, error) {
	command := ChangeDeadlineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingID(trackingID),
		command.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return ChangeDeadlineCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeadlineCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeadlineCommandIsNotConstructed)
}

// TrackingID returns the tracking id of the cargo to update.
func (c ChangeDeadlineCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// ArrivalDeadline returns the new arrival deadline.
func (c ChangeDeadlineCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *ChangeDeadlineCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *ChangeDeadlineCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	c.arrivalDeadline = arrivalDeadline
	return nil
}
