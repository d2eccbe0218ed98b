package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrUnLocodeIsNotConstructed is returned when attempting to use an improperly
// initialized UnLocode. UnLocodes must be created via the NewUnLocode constructor.
var ErrUnLocodeIsNotConstructed = errs.NewValueIsRequiredError(
	"UN/LOCODE must be created via NewUnLocode constructor")

// Two letter country code followed by three letters or digits 2-9
// (0 and 1 are excluded from the code list to avoid confusion with O and I).
var unLocodePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z2-9]{3}$`)

// UnLocode is a United Nations location code that uniquely identifies a port,
// terminal, or other place cargo is handled at.
//
// UnLocode is an immutable value object compared by its five character code.
// The zero value is invalid and will fail validation - use NewUnLocode to
// create instances.
//
// Example:
//
//	locode, err := kernel.NewUnLocode("SESTO")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(locode) // Output: SESTO
type UnLocode struct {
	value string
	guard guard.ConstructorGuard
}

// NewUnLocode creates a new UnLocode from its five character code.
// The code is uppercased before validation, so "nlrtm" and "NLRTM" produce
// equal value objects. Returns an error if the code does not match the
// UN/LOCODE format: two country letters followed by three letters or
// digits 2-9.
func NewUnLocode(code string) (UnLocode, error) {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if !unLocodePattern.MatchString(upper) {
		return UnLocode{}, errs.NewValueIsInvalidErrorWithCause(
			"unLocode",
			fmt.Errorf("%q does not match the UN/LOCODE format", code),
		)
	}

	return UnLocode{
		value: upper,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the UnLocode was properly constructed via NewUnLocode.
// The zero value fails this validation.
func (u UnLocode) Validate() error {
	return u.guard.Validate(ErrUnLocodeIsNotConstructed)
}

// String returns the five character code. Implements fmt.Stringer.
func (u UnLocode) String() string {
	return u.value
}

// IsEqual compares two location codes for equality by value.
func (u UnLocode) IsEqual(other UnLocode) bool {
	return u.value == other.value
}
