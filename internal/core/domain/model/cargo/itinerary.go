package cargo

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrItineraryIsNotConstructed is returned when attempting to use an
// improperly initialized Itinerary.
var ErrItineraryIsNotConstructed = errs.NewValueIsRequiredError(
	"itinerary must be created via NewItinerary constructor")

// Itinerary is the ordered plan of legs a cargo is expected to follow. It is
// immutable: route changes produce a new Itinerary, never in-place mutation.
// A cargo without a plan carries a nil *Itinerary, and every query on a nil
// itinerary behaves as "no plan": events are always expected and there is no
// departure, arrival, or ETA to report.
type Itinerary struct {
	legs  []Leg
	guard guard.ConstructorGuard
}

// NewItinerary creates an itinerary from a non-empty sequence of legs ordered
// by load time. The slice is copied.
func NewItinerary(legs []Leg) (*Itinerary, error) {
	if len(legs) == 0 {
		return nil, errs.NewValueIsRequiredError("legs")
	}

	for _, leg := range legs {
		if err := leg.Validate(); err != nil {
			return nil, err
		}
	}

	for i := 1; i < len(legs); i++ {
		if legs[i].LoadTime().Before(legs[i-1].UnloadTime()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"legs",
				fmt.Errorf("leg %d loads at %s before leg %d unloads at %s",
					i, legs[i].LoadTime(), i-1, legs[i-1].UnloadTime()),
			)
		}
	}

	return &Itinerary{
		legs:  append([]Leg(nil), legs...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Itinerary was properly constructed. A nil itinerary
// is a valid "not routed" state, not a construction error.
func (i *Itinerary) Validate() error {
	if i == nil {
		return nil
	}
	return i.guard.Validate(ErrItineraryIsNotConstructed)
}

// Legs returns the ordered legs of the itinerary. The slice is a copy.
func (i *Itinerary) Legs() []Leg {
	if i == nil {
		return nil
	}
	return append([]Leg(nil), i.legs...)
}

// InitialDepartureLocation returns the load location of the first leg, where
// the cargo is expected to be received. Reports false for a nil itinerary.
func (i *Itinerary) InitialDepartureLocation() (kernel.UnLocode, bool) {
	if i == nil {
		return kernel.UnLocode{}, false
	}
	return i.legs[0].LoadLocation(), true
}

// FinalArrivalLocation returns the unload location of the last leg, where the
// cargo is expected to be claimed. Reports false for a nil itinerary.
func (i *Itinerary) FinalArrivalLocation() (kernel.UnLocode, bool) {
	if i == nil {
		return kernel.UnLocode{}, false
	}
	return i.lastLeg().UnloadLocation(), true
}

// FinalArrivalTime returns the scheduled unload time of the last leg.
// Reports false for a nil itinerary.
func (i *Itinerary) FinalArrivalTime() (time.Time, bool) {
	if i == nil {
		return time.Time{}, false
	}
	return i.lastLeg().UnloadTime(), true
}

// IsExpected determines whether a handling event is consistent with the plan.
// Misdirection is flagged by the delivery derivation when this returns false.
//
// A nil itinerary expects everything: there is no plan to violate. Receive is
// positional (only the first leg's load location counts) and claim likewise
// (only the last leg's unload location, voyage irrelevant), while load and
// unload match existentially over the legs because a cargo may pass through a
// location more than once. Customs is never itinerary-scheduled and is always
// expected.
func (i *Itinerary) IsExpected(event *handling.HandlingEvent) bool {
	if i == nil {
		return true
	}

	switch event.Type() {
	case handling.Receive:
		return i.legs[0].LoadLocation().IsEqual(event.Location())

	case handling.Load:
		for _, leg := range i.legs {
			if leg.LoadLocation().IsEqual(event.Location()) &&
				leg.VoyageNumber().IsEqual(*event.VoyageNumber()) {
				return true
			}
		}
		return false

	case handling.Unload:
		for _, leg := range i.legs {
			if leg.UnloadLocation().IsEqual(event.Location()) &&
				leg.VoyageNumber().IsEqual(*event.VoyageNumber()) {
				return true
			}
		}
		return false

	case handling.Claim:
		return i.lastLeg().UnloadLocation().IsEqual(event.Location())

	case handling.Customs:
		return true

	default:
		panic(fmt.Sprintf("unhandled handling event type %d", event.Type()))
	}
}

func (i *Itinerary) lastLeg() Leg {
	return i.legs[len(i.legs)-1]
}
