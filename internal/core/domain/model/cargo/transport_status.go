package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// TransportStatus reports the cargo's physical state: not yet received, in a
// port, on board a carrier, or claimed by the receiver.
type TransportStatus int

const (
	// TransportStatusUnknown represents an invalid or undefined transport
	// status. This value (0) helps catch uninitialized TransportStatus values.
	TransportStatusUnknown TransportStatus = iota

	// NotReceived means no handling event has been recorded yet.
	NotReceived

	// InPort means the cargo is ashore at a location: received, unloaded, or
	// cleared through customs there.
	InPort

	// OnboardCarrier means the cargo was last loaded onto a carrier and has
	// not been unloaded since.
	OnboardCarrier

	// Claimed means the receiver has claimed the cargo. Final state.
	Claimed
)

// getTransportStatusStrings returns a map of TransportStatus values to their
// string representations. All statuses are included for string conversion.
func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		TransportStatusUnknown: "UNKNOWN",
		NotReceived:            "NOT_RECEIVED",
		InPort:                 "IN_PORT",
		OnboardCarrier:         "ONBOARD_CARRIER",
		Claimed:                "CLAIMED",
	}
}

// getValidTransportStatusStrings returns a map of only valid TransportStatus values.
func getValidTransportStatusStrings() map[TransportStatus]string {
	//nolint:exhaustive // TransportStatusUnknown is intentionally excluded as it's invalid
	return map[TransportStatus]string{
		NotReceived:    "NOT_RECEIVED",
		InPort:         "IN_PORT",
		OnboardCarrier: "ONBOARD_CARRIER",
		Claimed:        "CLAIMED",
	}
}

// TransportStatusFromString parses a transport status from its wire
// representation ("NOT_RECEIVED", "IN_PORT", "ONBOARD_CARRIER", "CLAIMED").
func TransportStatusFromString(s string) (TransportStatus, error) {
	for status, str := range getValidTransportStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return TransportStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"transportStatus", fmt.Errorf("%q is not a valid transport status", s))
}

// Validate checks if the TransportStatus value is one of the valid statuses.
func (s TransportStatus) Validate() error {
	if _, ok := getValidTransportStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transportStatus", fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the wire name of the transport status. Implements fmt.Stringer.
func (s TransportStatus) String() string {
	if str, ok := getTransportStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
