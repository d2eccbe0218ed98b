package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// RoutingStatus reports whether a cargo currently has a usable,
// destination-matching itinerary.
type RoutingStatus int

const (
	// RoutingStatusUnknown represents an invalid or undefined routing status.
	// This value (0) helps catch uninitialized RoutingStatus values.
	RoutingStatusUnknown RoutingStatus = iota

	// NotRouted means no itinerary has been assigned yet.
	NotRouted

	// Routed means the assigned itinerary satisfies the route specification
	// and the cargo is following it.
	Routed

	// Misrouted means the itinerary no longer serves the route specification,
	// or the cargo has strayed from it. Misrouted is sticky: it holds until a
	// new itinerary is assigned.
	Misrouted
)

// getRoutingStatusStrings returns a map of RoutingStatus values to their
// string representations. All statuses are included for string conversion.
func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		RoutingStatusUnknown: "UNKNOWN",
		NotRouted:            "NOT_ROUTED",
		Routed:               "ROUTED",
		Misrouted:            "MISROUTED",
	}
}

// getValidRoutingStatusStrings returns a map of only valid RoutingStatus values.
func getValidRoutingStatusStrings() map[RoutingStatus]string {
	//nolint:exhaustive // RoutingStatusUnknown is intentionally excluded as it's invalid
	return map[RoutingStatus]string{
		NotRouted: "NOT_ROUTED",
		Routed:    "ROUTED",
		Misrouted: "MISROUTED",
	}
}

// RoutingStatusFromString parses a routing status from its wire
// representation ("NOT_ROUTED", "ROUTED", "MISROUTED").
func RoutingStatusFromString(s string) (RoutingStatus, error) {
	for status, str := range getValidRoutingStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return RoutingStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"routingStatus", fmt.Errorf("%q is not a valid routing status", s))
}

// Validate checks if the RoutingStatus value is one of the valid statuses.
func (s RoutingStatus) Validate() error {
	if _, ok := getValidRoutingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"routingStatus", fmt.Errorf("%d is not a valid routing status", s))
	}
	return nil
}

// String returns the wire name of the routing status. Implements fmt.Stringer.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
