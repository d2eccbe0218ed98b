// Package handlingrepo provides data transfer objects and mapping functions
// for the handling event log. The log is append-only: events are facts of
// history and are never updated or deleted.
package handlingrepo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/google/uuid"
)

// HandlingEventDTO represents the database structure for persisting handling
// events. Indexed by tracking id for history reads.
type HandlingEventDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID       string    `gorm:"type:varchar(16);not null;index"`
	EventType        string    `gorm:"type:varchar(16);not null"`
	Location         string    `gorm:"type:varchar(5);not null"`
	VoyageNumber     *string   `gorm:"type:varchar(10)"`
	CompletionTime   time.Time `gorm:"not null"`
	RegistrationTime time.Time `gorm:"not null"`
}

// TableName specifies the database table name for handling event entities.
// Overrides GORM's default naming convention to use "handling_events".
func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

// fromDomain converts a handling event domain object to its database
// representation.
func fromDomain(event *handling.HandlingEvent) HandlingEventDTO {
	var voyageNumber *string
	if number := event.VoyageNumber(); number != nil {
		raw := number.String()
		voyageNumber = &raw
	}

	return HandlingEventDTO{
		ID:               event.ID().Bytes(),
		TrackingID:       event.TrackingID().String(),
		EventType:        event.Type().String(),
		Location:         event.Location().String(),
		VoyageNumber:     voyageNumber,
		CompletionTime:   event.CompletionTime(),
		RegistrationTime: event.RegistrationTime(),
	}
}

// toDomain converts a database DTO to a handling event domain object.
func toDomain(dto HandlingEventDTO) (*handling.HandlingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	eventType, err := handling.EventTypeFromString(dto.EventType)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewUnLocode(dto.Location)
	if err != nil {
		return nil, err
	}

	var voyageNumber *voyage.Number
	if dto.VoyageNumber != nil {
		number, numberErr := voyage.NewNumber(*dto.VoyageNumber)
		if numberErr != nil {
			return nil, numberErr
		}
		voyageNumber = &number
	}

	return handling.NewHandlingEvent(
		id, trackingID, eventType, location, voyageNumber,
		dto.CompletionTime, dto.RegistrationTime)
}
