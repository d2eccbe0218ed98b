package handling

import (
	"errors"
	"fmt"
)

// ErrCannotCreateHandlingEvent is the unwrap target for
// CannotCreateHandlingEventError. Callers classify registration failures with
// errors.Is against this value.
var ErrCannotCreateHandlingEvent = errors.New("cannot create handling event")

// ErrUnknownCargo reports that a registration attempt named a tracking id no
// booked cargo carries.
var ErrUnknownCargo = errors.New("unknown cargo")

// CannotCreateHandlingEventError reports that a handling event registration
// attempt could not be turned into a well-formed event: the tracking id,
// location, or voyage did not resolve to known reference data, or the voyage
// presence did not match the event type.
//
// This is a validation failure of the incoming report, reported to the caller
// synchronously and never retried automatically. It is distinct from
// misdirection, which is a normal business outcome and never an error.
type CannotCreateHandlingEventError struct {
	TrackingID string
	Cause      error
}

// NewCannotCreateHandlingEventError creates a CannotCreateHandlingEventError
// for the given cargo wrapping the validation failure that caused it.
func NewCannotCreateHandlingEventError(trackingID string, cause error) *CannotCreateHandlingEventError {
	return &CannotCreateHandlingEventError{TrackingID: trackingID, Cause: cause}
}

func (e *CannotCreateHandlingEventError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: tracking id is: %s (cause: %s)",
			ErrCannotCreateHandlingEvent, e.TrackingID, e.Cause)
	}
	return fmt.Sprintf("%s: tracking id is: %s", ErrCannotCreateHandlingEvent, e.TrackingID)
}

func (e *CannotCreateHandlingEventError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCannotCreateHandlingEvent, e.Cause}
	}
	return []error{ErrCannotCreateHandlingEvent}
}
