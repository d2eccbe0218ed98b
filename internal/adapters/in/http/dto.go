package http

import (
	"time"

	"cargotracker/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BookCargoRequest books a new cargo. TrackingID is optional: when omitted
// a fresh id is minted.
type BookCargoRequest struct {
	TrackingID      string    `json:"trackingId,omitempty"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

// BookCargoResponse returns the tracking id assigned to the booked cargo.
type BookCargoResponse struct {
	TrackingID string `json:"trackingId"`
}

// LegRequest is one leg of an itinerary being assigned.
type LegRequest struct {
	VoyageNumber   string    `json:"voyageNumber"`
	LoadLocation   string    `json:"loadLocation"`
	UnloadLocation string    `json:"unloadLocation"`
	LoadTime       time.Time `json:"loadTime"`
	UnloadTime     time.Time `json:"unloadTime"`
}

// AssignItineraryRequest assigns a new itinerary to a cargo.
type AssignItineraryRequest struct {
	Legs []LegRequest `json:"legs"`
}

// ChangeDestinationRequest changes the destination of a booked cargo.
type ChangeDestinationRequest struct {
	Destination string `json:"destination"`
}

// ChangeDeadlineRequest changes the arrival deadline of a booked cargo.
type ChangeDeadlineRequest struct {
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

// RegisterHandlingEventRequest reports a handling action. VoyageNumber is
// empty for events that happen ashore.
type RegisterHandlingEventRequest struct {
	CompletionTime time.Time `json:"completionTime"`
	TrackingID     string    `json:"trackingId"`
	VoyageNumber   string    `json:"voyageNumber,omitempty"`
	Location       string    `json:"location"`
	EventType      string    `json:"eventType"`
}

// TrackingResponse is the public tracking view of one cargo.
type TrackingResponse struct {
	TrackingID              string                 `json:"trackingId"`
	Origin                  string                 `json:"origin"`
	Destination             string                 `json:"destination"`
	ArrivalDeadline         time.Time              `json:"arrivalDeadline"`
	TransportStatus         string                 `json:"transportStatus"`
	RoutingStatus           string                 `json:"routingStatus"`
	LastKnownLocation       *string                `json:"lastKnownLocation,omitempty"`
	CurrentVoyage           *string                `json:"currentVoyage,omitempty"`
	IsMisdirected           bool                   `json:"isMisdirected"`
	ETA                     *time.Time             `json:"eta,omitempty"`
	NextExpectedActivity    *ExpectedActivity      `json:"nextExpectedActivity,omitempty"`
	IsUnloadedAtDestination bool                   `json:"isUnloadedAtDestination"`
	CalculatedAt            time.Time              `json:"calculatedAt"`
	HandlingEvents          []TrackedHandlingEvent `json:"handlingEvents"`
}

// ExpectedActivity names the handling action that should happen to the
// cargo next.
type ExpectedActivity struct {
	EventType    string  `json:"eventType"`
	Location     string  `json:"location"`
	VoyageNumber *string `json:"voyageNumber,omitempty"`
}

// TrackedHandlingEvent is one row of the handling history in the tracking
// view.
type TrackedHandlingEvent struct {
	EventType      string    `json:"eventType"`
	Location       string    `json:"location"`
	VoyageNumber   *string   `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}

// UnroutedCargoResponse is one cargo awaiting routing.
type UnroutedCargoResponse struct {
	TrackingID      string    `json:"trackingId"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

func trackingResponseFromView(view queries.TrackCargoQueryResponse) TrackingResponse {
	response := TrackingResponse{
		TrackingID:              view.TrackingID.String(),
		Origin:                  view.Origin.String(),
		Destination:             view.Destination.String(),
		ArrivalDeadline:         view.ArrivalDeadline,
		TransportStatus:         view.TransportStatus.String(),
		RoutingStatus:           view.RoutingStatus.String(),
		IsMisdirected:           view.IsMisdirected,
		ETA:                     view.ETA,
		IsUnloadedAtDestination: view.IsUnloadedAtDestination,
		CalculatedAt:            view.CalculatedAt,
		HandlingEvents:          make([]TrackedHandlingEvent, 0, len(view.HandlingEvents)),
	}

	if view.LastKnownLocation != nil {
		raw := view.LastKnownLocation.String()
		response.LastKnownLocation = &raw
	}
	if view.CurrentVoyage != nil {
		raw := view.CurrentVoyage.String()
		response.CurrentVoyage = &raw
	}
	if view.NextExpectedEventType != nil && view.NextExpectedLocation != nil {
		activity := ExpectedActivity{
			EventType: view.NextExpectedEventType.String(),
			Location:  view.NextExpectedLocation.String(),
		}
		if view.NextExpectedVoyage != nil {
			raw := view.NextExpectedVoyage.String()
			activity.VoyageNumber = &raw
		}
		response.NextExpectedActivity = &activity
	}

	for _, event := range view.HandlingEvents {
		row := TrackedHandlingEvent{
			EventType:      event.EventType.String(),
			Location:       event.Location.String(),
			CompletionTime: event.CompletionTime,
		}
		if event.VoyageNumber != nil {
			raw := event.VoyageNumber.String()
			row.VoyageNumber = &raw
		}
		response.HandlingEvents = append(response.HandlingEvents, row)
	}

	return response
}
