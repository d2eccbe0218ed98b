package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackCargoQueryHandler reads the tracking view of a cargo from the
// database. The view is served from the persisted delivery snapshot, so a
// read never triggers re-derivation.
//
// Example:
//
//	handler := NewTrackCargoQueryHandler(db)
//	query, err := NewTrackCargoQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to track cargo: %v", err)
//	    return err
//	}
type TrackCargoQueryHandler struct {
	db *gorm.DB
}

// NewTrackCargoQueryHandler creates a handler for cargo tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackCargoQueryHandler(db *gorm.DB) TrackCargoQueryHandler {
	return TrackCargoQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no cargo
// with the requested tracking id is booked.
func (h TrackCargoQueryHandler) Handle(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response, err := h.readCargoRow(ctx, query.TrackingID())
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	events, err := h.readHandlingHistory(ctx, query.TrackingID())
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}
	response.HandlingEvents = events

	return response, nil
}

func (h TrackCargoQueryHandler) readCargoRow(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (TrackCargoQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			origin,
			destination,
			arrival_deadline,
			delivery_transport_status,
			delivery_routing_status,
			delivery_last_known_location,
			delivery_current_voyage_number,
			delivery_is_misdirected,
			delivery_eta,
			delivery_next_expected_event_type,
			delivery_next_expected_location,
			delivery_next_expected_voyage_number,
			delivery_is_unloaded_at_destination,
			delivery_calculated_at
		FROM cargos
		WHERE tracking_id = ?
	`, trackingID.String()).Row()

	var (
		origin, destination, transportStatus, routingStatus string
		lastKnownLocation, currentVoyage                    sql.NullString
		nextEventType, nextLocation, nextVoyage             sql.NullString
		arrivalDeadline, calculatedAt                       time.Time
		eta                                                 sql.NullTime
		isMisdirected, isUnloadedAtDestination              bool
	)

	err := row.Scan(
		&origin,
		&destination,
		&arrivalDeadline,
		&transportStatus,
		&routingStatus,
		&lastKnownLocation,
		&currentVoyage,
		&isMisdirected,
		&eta,
		&nextEventType,
		&nextLocation,
		&nextVoyage,
		&isUnloadedAtDestination,
		&calculatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackCargoQueryResponse{}, errs.NewObjectNotFoundError("cargo", trackingID.String())
		}
		return TrackCargoQueryResponse{}, err
	}

	response := TrackCargoQueryResponse{
		TrackingID:              trackingID,
		ArrivalDeadline:         arrivalDeadline,
		IsMisdirected:           isMisdirected,
		IsUnloadedAtDestination: isUnloadedAtDestination,
		CalculatedAt:            calculatedAt,
	}

	if response.Origin, err = kernel.NewUnLocode(origin); err != nil {
		return TrackCargoQueryResponse{}, err
	}
	if response.Destination, err = kernel.NewUnLocode(destination); err != nil {
		return TrackCargoQueryResponse{}, err
	}
	if response.TransportStatus, err = cargo.TransportStatusFromString(transportStatus); err != nil {
		return TrackCargoQueryResponse{}, err
	}
	if response.RoutingStatus, err = cargo.RoutingStatusFromString(routingStatus); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	if response.LastKnownLocation, err = optionalLocode(lastKnownLocation); err != nil {
		return TrackCargoQueryResponse{}, err
	}
	if response.CurrentVoyage, err = optionalVoyageNumber(currentVoyage); err != nil {
		return TrackCargoQueryResponse{}, err
	}
	if response.NextExpectedLocation, err = optionalLocode(nextLocation); err != nil {
		return TrackCargoQueryResponse{}, err
	}
	if response.NextExpectedVoyage, err = optionalVoyageNumber(nextVoyage); err != nil {
		return TrackCargoQueryResponse{}, err
	}
	if nextEventType.Valid {
		eventType, typeErr := handling.EventTypeFromString(nextEventType.String)
		if typeErr != nil {
			return TrackCargoQueryResponse{}, typeErr
		}
		response.NextExpectedEventType = &eventType
	}
	if eta.Valid {
		t := eta.Time
		response.ETA = &t
	}

	return response, nil
}

func (h TrackCargoQueryHandler) readHandlingHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) ([]TrackedHandlingEventResponse, error) {
	events := make([]TrackedHandlingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			location,
			voyage_number,
			completion_time
		FROM handling_events
		WHERE tracking_id = ?
		ORDER BY completion_time, registration_time
	`, trackingID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			eventType, location string
			voyageNumber        sql.NullString
			completionTime      time.Time
		)

		if err = rows.Scan(&eventType, &location, &voyageNumber, &completionTime); err != nil {
			return nil, err
		}

		var event TrackedHandlingEventResponse
		if event.EventType, err = handling.EventTypeFromString(eventType); err != nil {
			return nil, err
		}
		if event.Location, err = kernel.NewUnLocode(location); err != nil {
			return nil, err
		}
		if event.VoyageNumber, err = optionalVoyageNumber(voyageNumber); err != nil {
			return nil, err
		}
		event.CompletionTime = completionTime
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func optionalLocode(value sql.NullString) (*kernel.UnLocode, error) {
	if !value.Valid {
		return nil, nil
	}

	unLocode, err := kernel.NewUnLocode(value.String)
	if err != nil {
		return nil, err
	}
	return &unLocode, nil
}

func optionalVoyageNumber(value sql.NullString) (*voyage.Number, error) {
	if !value.Valid {
		return nil, nil
	}

	number, err := voyage.NewNumber(value.String)
	if err != nil {
		return nil, err
	}
	return &number, nil
}
