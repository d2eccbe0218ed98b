package kernel

import (
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed is returned when attempting to use an improperly
// initialized TrackingID. Tracking ids must be created via NewTrackingID or
// NewRandomTrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking id must be created via NewTrackingID or NewRandomTrackingID constructors")

// trackingIDRandomLength is the number of characters taken from a generated
// UUID when minting a fresh tracking id at booking time.
const trackingIDRandomLength = 8

// TrackingID uniquely identifies a cargo across the whole system. It is
// assigned once at booking and never changes for the lifetime of the cargo.
//
// TrackingID is an immutable value object compared by its uppercased string
// value. The zero value is invalid - use the constructors to create instances.
//
// Example:
//
//	id, err := kernel.NewTrackingID("ABC123")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(id) // Output: ABC123
type TrackingID struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingID creates a TrackingID from its string value. The value is
// trimmed and uppercased, so lookups are case-insensitive at the edges of the
// system. Returns an error for empty or whitespace-only input.
func NewTrackingID(value string) (TrackingID, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if upper == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}

	return TrackingID{
		value: upper,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewRandomTrackingID mints a fresh tracking id for a newly booked cargo.
// The id is the first eight characters of a random UUID, uppercased, which is
// short enough to be quoted over the phone while keeping collisions unlikely
// at booking volumes.
func NewRandomTrackingID() TrackingID {
	raw := strings.ToUpper(uuid.NewString()[:trackingIDRandomLength])
	return TrackingID{
		value: raw,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the TrackingID was properly constructed via a constructor.
// The zero value fails this validation.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}

// String returns the tracking id value. Implements fmt.Stringer.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking ids for equality by value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}
