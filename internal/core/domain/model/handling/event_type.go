package handling

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// EventType classifies a real-world handling action. Load and unload happen on
// a voyage and therefore require one; receive, claim, and customs happen in
// port and must not carry one.
type EventType int

const (
	// EventTypeUnknown represents an invalid or undefined event type.
	// This value (0) helps catch uninitialized EventType values.
	EventTypeUnknown EventType = iota

	// Receive records the cargo being taken into custody at its origin.
	Receive

	// Load records the cargo being loaded onto a carrier on a voyage.
	Load

	// Unload records the cargo being unloaded from a carrier on a voyage.
	Unload

	// Customs records the cargo clearing customs. Customs is not scheduled by
	// the itinerary and does not advance the cargo along it.
	Customs

	// Claim records the cargo being claimed by the receiver at its destination.
	Claim
)

// getEventTypeStrings returns a map of EventType values to their string
// representations. All types are included for string conversion.
func getEventTypeStrings() map[EventType]string {
	return map[EventType]string{
		EventTypeUnknown: "UNKNOWN",
		Receive:          "RECEIVE",
		Load:             "LOAD",
		Unload:           "UNLOAD",
		Customs:          "CUSTOMS",
		Claim:            "CLAIM",
	}
}

// getValidEventTypeStrings returns a map of only valid EventType values.
func getValidEventTypeStrings() map[EventType]string {
	//nolint:exhaustive // EventTypeUnknown is intentionally excluded as it's invalid
	return map[EventType]string{
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Customs: "CUSTOMS",
		Claim:   "CLAIM",
	}
}

// EventTypeFromString parses an event type from its wire representation
// ("RECEIVE", "LOAD", "UNLOAD", "CUSTOMS", "CLAIM"). Used by the HTTP and
// file-import adapters.
func EventTypeFromString(s string) (EventType, error) {
	for eventType, str := range getValidEventTypeStrings() {
		if str == s {
			return eventType, nil
		}
	}
	return EventTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"eventType", fmt.Errorf("%q is not a valid handling event type", s))
}

// Validate checks if the EventType value is one of the five valid types.
func (t EventType) Validate() error {
	if _, ok := getValidEventTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"eventType", fmt.Errorf("%d is not a valid handling event type", t))
	}
	return nil
}

// String returns the wire name of the event type. Implements fmt.Stringer.
func (t EventType) String() string {
	if str, ok := getEventTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresVoyage reports whether events of this type must reference a voyage.
// Load and unload happen on board a carrier; every other type happens ashore.
func (t EventType) RequiresVoyage() bool {
	return t == Load || t == Unload
}

// ProhibitsVoyage reports whether events of this type must not reference a
// voyage. The inverse of RequiresVoyage for valid types.
func (t EventType) ProhibitsVoyage() bool {
	return !t.RequiresVoyage()
}
