// Package location contains the Location reference entity: a port, terminal,
// or other place identified by its UN/LOCODE. Locations are read-only
// reference data for the tracking core; the handling event factory resolves
// reported codes against the location repository before accepting an event.
package location

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through the NewLocation factory method.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is a place cargo is handled at, identified by its UN/LOCODE.
// Two locations with the same code are the same location regardless of name.
type Location struct {
	unLocode      kernel.UnLocode
	name          string
	isConstructed bool
}

// NewLocation creates a Location with the given code and human-readable name.
func NewLocation(unLocode kernel.UnLocode, name string) (*Location, error) {
	location := &Location{
		isConstructed: true,
	}

	if err := errors.Join(
		location.setUnLocode(unLocode),
		location.setName(name),
	); err != nil {
		return nil, err
	}

	return location, nil
}

// Validate ensures the Location instance was properly constructed through NewLocation.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}

	return nil
}

// IsEqual compares two locations by their UN/LOCODE.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.unLocode.IsEqual(other.unLocode)
}

// UnLocode returns the location's identifying code.
func (l *Location) UnLocode() kernel.UnLocode {
	return l.unLocode
}

// Name returns the location's human-readable name, e.g. "Stockholm".
func (l *Location) Name() string {
	return l.name
}

func (l *Location) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	l.unLocode = unLocode
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}
