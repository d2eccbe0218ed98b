package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrTrackCargoQueryIsNotConstructed = errors.New(
		"TrackCargoQuery must be created via NewTrackCargoQuery constructor",
	)
)

// TrackCargoQuery retrieves the public tracking view of one cargo: where it
// is, whether it is on track, what should happen to it next, and the full
// handling history.
//
// Example:
//
//	query, err := NewTrackCargoQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//	handler := NewTrackCargoQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track cargo: %w", err)
//	}
//
//	fmt.Printf("Cargo %s is %s\n", view.TrackingID, view.TransportStatus)
type TrackCargoQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackCargoQuery creates a query to retrieve the tracking view of the
// cargo with the given tracking id.
func NewTrackCargoQuery(trackingID kernel.TrackingID) (TrackCargoQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackCargoQuery{}, err
	}

	return TrackCargoQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackCargoQueryIsNotConstructed if validation fails.
func (q TrackCargoQuery) Validate() error {
	return q.guard.Validate(ErrTrackCargoQueryIsNotConstructed)
}

// TrackingID returns the tracking id the view is requested for.
func (q TrackCargoQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// TrackCargoQueryResponse is the tracking view of one cargo. It is read
// straight from the persisted delivery snapshot; no derivation happens on
// the read path.
type TrackCargoQueryResponse struct {
	TrackingID              kernel.TrackingID
	Origin                  kernel.UnLocode
	Destination             kernel.UnLocode
	ArrivalDeadline         time.Time
	TransportStatus         cargo.TransportStatus
	RoutingStatus           cargo.RoutingStatus
	LastKnownLocation       *kernel.UnLocode
	CurrentVoyage           *voyage.Number
	IsMisdirected           bool
	ETA                     *time.Time
	NextExpectedEventType   *handling.EventType
	NextExpectedLocation    *kernel.UnLocode
	NextExpectedVoyage      *voyage.Number
	IsUnloadedAtDestination bool
	CalculatedAt            time.Time
	HandlingEvents          []TrackedHandlingEventResponse
}

// TrackedHandlingEventResponse is one row of the handling history shown in
// the tracking view, ordered by completion time.
type TrackedHandlingEventResponse struct {
	EventType      handling.EventType
	Location       kernel.UnLocode
	VoyageNumber   *voyage.Number
	CompletionTime time.Time
}
