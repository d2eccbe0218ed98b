// Package kafka publishes cargo tracking outcomes to a Kafka topic. The
// fan-out is best-effort: a registration never fails because downstream
// consumers are unreachable.
package kafka

import (
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
)

// CargoHandledMessage is the wire payload published after a handling event
// has been registered. It carries both the event itself and the delivery
// snapshot derived from it, so consumers do not need a follow-up read.
type CargoHandledMessage struct {
	TrackingID      string    `json:"trackingId"`
	EventType       string    `json:"eventType"`
	Location        string    `json:"location"`
	VoyageNumber    string    `json:"voyageNumber,omitempty"`
	CompletionTime  time.Time `json:"completionTime"`
	TransportStatus string    `json:"transportStatus"`
	RoutingStatus   string    `json:"routingStatus"`
	IsMisdirected   bool      `json:"isMisdirected"`
}

func newCargoHandledMessage(event *handling.HandlingEvent, delivery cargo.Delivery) CargoHandledMessage {
	message := CargoHandledMessage{
		TrackingID:      event.TrackingID().String(),
		EventType:       event.Type().String(),
		Location:        event.Location().String(),
		CompletionTime:  event.CompletionTime(),
		TransportStatus: delivery.TransportStatus().String(),
		RoutingStatus:   delivery.RoutingStatus().String(),
		IsMisdirected:   delivery.IsMisdirected(),
	}

	if number := event.VoyageNumber(); number != nil {
		message.VoyageNumber = number.String()
	}

	return message
}
