package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
	"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
)

// RegisterHandlingEventCommand represents a report that a real-world
// handling action happened to a cargo: received, loaded, unloaded, cleared
// through customs, or claimed.
//
// The command checks shape only (well-formed identifiers, a completion
// time). Whether the identifiers resolve to known reference data and whether
// the voyage presence fits the event type is the handling event factory's
// judgement, made by the handler against the repositories.
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	completionTime time.Time
	trackingID     kernel.TrackingID
	voyageNumber   *voyage.Number
	unLocode       kernel.UnLocode
	eventType      handling.EventType

	guard guard.ConstructorGuard
}

// NewRegisterHandlingEventCommand creates a command to register a handling
// event. voyageNumber is optional; pass nil for events that happen ashore.
func NewRegisterHandlingEventCommand(
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber *voyage.Number,
	unLocode kernel.UnLocode,
	eventType handling.EventType,
) (RegisterHandlingEventCommand, error) {
	command := RegisterHandlingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCompletionTime(completionTime),
		command.setTrackingID(trackingID),
		command.setVoyageNumber(voyageNumber),
		command.setUnLocode(unLocode),
		command.setEventType(eventType),
	); err != nil {
		return RegisterHandlingEventCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

// CompletionTime returns when the handling action physically happened.
func (c RegisterHandlingEventCommand) CompletionTime() time.Time {
	return c.completionTime
}

// TrackingID returns the tracking id the event is reported against.
func (c RegisterHandlingEventCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// VoyageNumber returns the reported voyage, or nil for events ashore.
func (c RegisterHandlingEventCommand) VoyageNumber() *voyage.Number {
	if c.voyageNumber == nil {
		return nil
	}
	number := *c.voyageNumber
	return &number
}

// UnLocode returns the location the handling action happened at.
func (c RegisterHandlingEventCommand) UnLocode() kernel.UnLocode {
	return c.unLocode
}

// EventType returns the kind of handling action reported.
func (c RegisterHandlingEventCommand) EventType() handling.EventType {
	return c.eventType
}

func (c *RegisterHandlingEventCommand) setCompletionTime(completionTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	c.completionTime = completionTime
	return nil
}

func (c *RegisterHandlingEventCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *RegisterHandlingEventCommand) setVoyageNumber(voyageNumber *voyage.Number) error {
	if voyageNumber == nil {
		return nil
	}
	if err := voyageNumber.Validate(); err != nil {
		return err
	}
	number := *voyageNumber
	c.voyageNumber = &number
	return nil
}

func (c *RegisterHandlingEventCommand) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	c.unLocode = unLocode
	return nil
}

func (c *RegisterHandlingEventCommand) setEventType(eventType handling.EventType) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	c.eventType = eventType
	return nil
}
