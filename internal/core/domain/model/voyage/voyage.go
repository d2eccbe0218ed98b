// Package voyage contains the voyage aggregate: a uniquely numbered series of
// carrier movements a vessel performs. Voyages are reference data for the
// tracking core - itinerary legs and handling events refer to them by number,
// and the handling event factory resolves those numbers against the voyage
// repository.
package voyage

import (
	"errors"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrNumberIsNotConstructed is returned when attempting to use an improperly
	// initialized Number. Voyage numbers must be created via NewNumber.
	ErrNumberIsNotConstructed = errs.NewValueIsRequiredError(
		"voyage number must be created via NewNumber constructor")

	// ErrVoyageIsNotConstructed is returned when a Voyage instance was not created
	// through the NewVoyage factory method.
	ErrVoyageIsNotConstructed = errors.New("Voyage must be created via NewVoyage constructor")
)

// Number uniquely identifies a voyage. It is an immutable value object
// compared by its string value; the zero value is invalid.
type Number struct {
	value string
	guard guard.ConstructorGuard
}

// NewNumber creates a voyage number from its string value. The value is
// trimmed and uppercased. Returns an error for empty input.
func NewNumber(value string) (Number, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	if upper == "" {
		return Number{}, errs.NewValueIsRequiredError("voyageNumber")
	}

	return Number{
		value: upper,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Number was properly constructed via NewNumber.
func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

// String returns the voyage number value. Implements fmt.Stringer.
func (n Number) String() string {
	return n.value
}

// IsEqual compares two voyage numbers for equality by value.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Voyage is the aggregate root for a vessel voyage: an identifying number and
// the schedule of carrier movements it performs.
//
// Invariants:
//   - Must have a valid voyage number
//   - Must have a valid, non-empty schedule
//   - Can only be created through the NewVoyage constructor
type Voyage struct {
	number        Number
	schedule      Schedule
	isConstructed bool
}

// NewVoyage creates a Voyage with the given number and schedule.
// Both must be properly constructed value objects.
func NewVoyage(number Number, schedule Schedule) (*Voyage, error) {
	voyage := &Voyage{
		isConstructed: true,
	}

	if err := errors.Join(
		voyage.setNumber(number),
		voyage.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return voyage, nil
}

// Validate ensures the Voyage instance was properly constructed through NewVoyage.
func (v *Voyage) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVoyageIsNotConstructed
	}

	return nil
}

// IsEqual compares two voyages by their identifying number.
func (v *Voyage) IsEqual(other *Voyage) bool {
	return other != nil && v.number.IsEqual(other.number)
}

// Number returns the voyage's identifying number.
func (v *Voyage) Number() Number {
	return v.number
}

// Schedule returns the voyage's schedule of carrier movements.
func (v *Voyage) Schedule() Schedule {
	return v.schedule
}

func (v *Voyage) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	v.number = number
	return nil
}

func (v *Voyage) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	v.schedule = schedule
	return nil
}
