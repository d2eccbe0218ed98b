package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when attempting to use an
// improperly initialized Delivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery must be derived via DeriveDelivery or restored via RestoreDelivery")

// Delivery is the derived snapshot summarizing a cargo's current tracking
// state: its physical whereabouts, whether it follows the plan, what should
// happen to it next, and when it is expected to arrive.
//
// A Delivery is always a pure function of (route specification, itinerary,
// event history) at the moment of derivation. Callers never edit one; they
// re-derive. Absent facts are nil: a cargo with no events has no last known
// location, a cargo ashore is on no voyage, an off-plan cargo has no ETA and
// no next expected activity.
type Delivery struct {
	transportStatus         TransportStatus
	routingStatus           RoutingStatus
	lastKnownLocation       *kernel.UnLocode
	currentVoyage           *voyage.Number
	misdirected             bool
	eta                     *time.Time
	nextExpectedActivity    *HandlingActivity
	isUnloadedAtDestination bool
	calculatedAt            time.Time
	guard                   guard.ConstructorGuard
}

// DeriveDelivery folds the route specification, the itinerary, and the full
// ordered event history into a Delivery snapshot. Pure: no clock, no I/O, no
// hidden state - deriving twice from the same inputs yields identical values.
//
// previous carries the one piece of state that outlives a single event:
// once a cargo is misrouted it stays misrouted until a new itinerary is
// assigned. Pass the cargo's current delivery on event registration and
// route-specification changes, and nil when a new itinerary is assigned
// (a new plan forgives past deviation).
//
// Misdirection is judged on the latest event only, against the current
// itinerary: assigning a new plan is allowed to make sense of events the old
// plan did not predict, and re-auditing the whole history would prevent
// exactly that.
func DeriveDelivery(
	routeSpecification RouteSpecification,
	itinerary *Itinerary,
	history handling.History,
	previous *Delivery,
) Delivery {
	lastEvent := history.MostRecentlyCompletedEvent()
	misdirected := lastEvent != nil && !itinerary.IsExpected(lastEvent)

	delivery := Delivery{
		transportStatus:   calculateTransportStatus(lastEvent),
		routingStatus:     calculateRoutingStatus(routeSpecification, itinerary, misdirected, previous),
		lastKnownLocation: calculateLastKnownLocation(lastEvent),
		currentVoyage:     calculateCurrentVoyage(lastEvent),
		misdirected:       misdirected,
		calculatedAt:      calculateTimestamp(lastEvent),
		guard:             guard.NewConstructorGuard(),
	}

	onTrack := delivery.routingStatus == Routed && !misdirected
	delivery.eta = calculateETA(itinerary, onTrack, delivery.transportStatus)
	delivery.isUnloadedAtDestination = calculateUnloadedAtDestination(itinerary, lastEvent)
	delivery.nextExpectedActivity = calculateNextExpectedActivity(itinerary, history, onTrack)

	return delivery
}

// RestoreDelivery reconstructs a previously derived Delivery from persisted
// state. Unlike DeriveDelivery it can fail: stored enum values may be
// malformed and must surface as errors at the storage boundary.
func RestoreDelivery(
	transportStatus TransportStatus,
	routingStatus RoutingStatus,
	lastKnownLocation *kernel.UnLocode,
	currentVoyage *voyage.Number,
	misdirected bool,
	eta *time.Time,
	nextExpectedActivity *HandlingActivity,
	isUnloadedAtDestination bool,
	calculatedAt time.Time,
) (Delivery, error) {
	if err := errors.Join(
		transportStatus.Validate(),
		routingStatus.Validate(),
	); err != nil {
		return Delivery{}, err
	}
	if lastKnownLocation != nil {
		if err := lastKnownLocation.Validate(); err != nil {
			return Delivery{}, err
		}
	}
	if currentVoyage != nil {
		if err := currentVoyage.Validate(); err != nil {
			return Delivery{}, err
		}
	}
	if nextExpectedActivity != nil {
		if err := nextExpectedActivity.Validate(); err != nil {
			return Delivery{}, err
		}
	}

	return Delivery{
		transportStatus:         transportStatus,
		routingStatus:           routingStatus,
		lastKnownLocation:       copyLocation(lastKnownLocation),
		currentVoyage:           copyVoyageNumber(currentVoyage),
		misdirected:             misdirected,
		eta:                     copyTime(eta),
		nextExpectedActivity:    copyActivity(nextExpectedActivity),
		isUnloadedAtDestination: isUnloadedAtDestination,
		calculatedAt:            calculatedAt,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Delivery was properly constructed.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// TransportStatus returns the cargo's physical state.
func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// RoutingStatus reports whether the cargo has a usable itinerary.
func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

// LastKnownLocation returns the location of the latest handling event, or
// nil when nothing has been recorded yet.
func (d Delivery) LastKnownLocation() *kernel.UnLocode {
	return copyLocation(d.lastKnownLocation)
}

// CurrentVoyage returns the voyage the cargo is on board of, or nil when it
// is ashore, claimed, or not yet received.
func (d Delivery) CurrentVoyage() *voyage.Number {
	return copyVoyageNumber(d.currentVoyage)
}

// IsMisdirected reports whether the latest handling event contradicts the
// itinerary. A normal business outcome, not an error.
func (d Delivery) IsMisdirected() bool {
	return d.misdirected
}

// ETA returns the estimated arrival time, or nil when the cargo is off plan,
// unrouted, or already claimed.
func (d Delivery) ETA() *time.Time {
	return copyTime(d.eta)
}

// NextExpectedActivity returns the handling step the plan expects next, or
// nil when the cargo is off plan, unrouted, or claimed.
func (d Delivery) NextExpectedActivity() *HandlingActivity {
	return copyActivity(d.nextExpectedActivity)
}

// IsUnloadedAtDestination reports whether the latest event unloaded the
// cargo at the itinerary's final arrival location.
func (d Delivery) IsUnloadedAtDestination() bool {
	return d.isUnloadedAtDestination
}

// CalculatedAt returns the completion time of the last event the snapshot
// considered, or the zero time for an empty history.
func (d Delivery) CalculatedAt() time.Time {
	return d.calculatedAt
}

// IsEqual compares two delivery snapshots field by field.
func (d Delivery) IsEqual(other Delivery) bool {
	if d.transportStatus != other.transportStatus ||
		d.routingStatus != other.routingStatus ||
		d.misdirected != other.misdirected ||
		d.isUnloadedAtDestination != other.isUnloadedAtDestination ||
		!d.calculatedAt.Equal(other.calculatedAt) {
		return false
	}
	if (d.lastKnownLocation == nil) != (other.lastKnownLocation == nil) ||
		(d.lastKnownLocation != nil && !d.lastKnownLocation.IsEqual(*other.lastKnownLocation)) {
		return false
	}
	if (d.currentVoyage == nil) != (other.currentVoyage == nil) ||
		(d.currentVoyage != nil && !d.currentVoyage.IsEqual(*other.currentVoyage)) {
		return false
	}
	if (d.eta == nil) != (other.eta == nil) ||
		(d.eta != nil && !d.eta.Equal(*other.eta)) {
		return false
	}
	if (d.nextExpectedActivity == nil) != (other.nextExpectedActivity == nil) ||
		(d.nextExpectedActivity != nil && !d.nextExpectedActivity.IsEqual(*other.nextExpectedActivity)) {
		return false
	}
	return true
}

func calculateTransportStatus(lastEvent *handling.HandlingEvent) TransportStatus {
	if lastEvent == nil {
		return NotReceived
	}

	switch lastEvent.Type() {
	case handling.Receive, handling.Unload, handling.Customs:
		return InPort
	case handling.Load:
		return OnboardCarrier
	case handling.Claim:
		return Claimed
	default:
		panic(fmt.Sprintf("unhandled handling event type %d", lastEvent.Type()))
	}
}

func calculateRoutingStatus(
	routeSpecification RouteSpecification,
	itinerary *Itinerary,
	misdirected bool,
	previous *Delivery,
) RoutingStatus {
	if itinerary == nil {
		return NotRouted
	}
	if !routeSpecification.IsSatisfiedBy(itinerary) || misdirected {
		return Misrouted
	}
	// Misrouted holds until a new itinerary is assigned, even when a later
	// event happens to line up with the legs again.
	if previous != nil && previous.routingStatus == Misrouted {
		return Misrouted
	}
	return Routed
}

func calculateLastKnownLocation(lastEvent *handling.HandlingEvent) *kernel.UnLocode {
	if lastEvent == nil {
		return nil
	}
	location := lastEvent.Location()
	return &location
}

func calculateCurrentVoyage(lastEvent *handling.HandlingEvent) *voyage.Number {
	if lastEvent == nil || lastEvent.Type() != handling.Load {
		return nil
	}
	return lastEvent.VoyageNumber()
}

func calculateTimestamp(lastEvent *handling.HandlingEvent) time.Time {
	if lastEvent == nil {
		return time.Time{}
	}
	return lastEvent.CompletionTime()
}

func calculateETA(itinerary *Itinerary, onTrack bool, transportStatus TransportStatus) *time.Time {
	if !onTrack || transportStatus == Claimed {
		return nil
	}
	arrivalTime, ok := itinerary.FinalArrivalTime()
	if !ok {
		return nil
	}
	return &arrivalTime
}

func calculateUnloadedAtDestination(itinerary *Itinerary, lastEvent *handling.HandlingEvent) bool {
	if lastEvent == nil || lastEvent.Type() != handling.Unload {
		return false
	}
	arrival, ok := itinerary.FinalArrivalLocation()
	return ok && arrival.IsEqual(lastEvent.Location())
}

// calculateNextExpectedActivity walks the itinerary forward from the latest
// event to the next unperformed step. Customs does not advance the plan, so
// the walk starts from the latest non-customs event. Off-plan cargos (and
// claimed ones) expect nothing.
func calculateNextExpectedActivity(
	itinerary *Itinerary,
	history handling.History,
	onTrack bool,
) *HandlingActivity {
	if !onTrack {
		return nil
	}

	legs := itinerary.Legs()

	lastEvent := history.MostRecentNonCustomsEvent()
	if lastEvent == nil {
		return mustVoyageActivity(handling.Receive, legs[0].LoadLocation(), nil)
	}

	switch lastEvent.Type() {
	case handling.Receive:
		number := legs[0].VoyageNumber()
		return mustVoyageActivity(handling.Load, legs[0].LoadLocation(), &number)

	case handling.Load:
		for _, leg := range legs {
			if leg.LoadLocation().IsEqual(lastEvent.Location()) {
				number := leg.VoyageNumber()
				return mustVoyageActivity(handling.Unload, leg.UnloadLocation(), &number)
			}
		}
		return nil

	case handling.Unload:
		for i, leg := range legs {
			if !leg.UnloadLocation().IsEqual(lastEvent.Location()) {
				continue
			}
			if i == len(legs)-1 {
				return mustVoyageActivity(handling.Claim, leg.UnloadLocation(), nil)
			}
			next := legs[i+1]
			number := next.VoyageNumber()
			return mustVoyageActivity(handling.Load, next.LoadLocation(), &number)
		}
		return nil

	case handling.Claim:
		return nil

	default:
		panic(fmt.Sprintf("unhandled handling event type %d", lastEvent.Type()))
	}
}

// mustVoyageActivity builds an activity from already-validated itinerary
// parts; a failure here is a contract violation, not an input error.
func mustVoyageActivity(
	eventType handling.EventType,
	location kernel.UnLocode,
	voyageNumber *voyage.Number,
) *HandlingActivity {
	var (
		activity HandlingActivity
		err      error
	)
	if voyageNumber == nil {
		activity, err = NewHandlingActivity(eventType, location)
	} else {
		activity, err = NewVoyageHandlingActivity(eventType, location, *voyageNumber)
	}
	if err != nil {
		panic(fmt.Sprintf("expected activity from valid itinerary parts: %s", err))
	}
	return &activity
}

func copyLocation(location *kernel.UnLocode) *kernel.UnLocode {
	if location == nil {
		return nil
	}
	value := *location
	return &value
}

func copyVoyageNumber(number *voyage.Number) *voyage.Number {
	if number == nil {
		return nil
	}
	value := *number
	return &value
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}

func copyActivity(activity *HandlingActivity) *HandlingActivity {
	if activity == nil {
		return nil
	}
	value := *activity
	return &value
}
