// Package cargorepo provides data transfer objects and mapping functions for
// cargo aggregate persistence. A cargo row carries the route specification
// and the derived delivery snapshot; itinerary legs live in a child table
// keyed by tracking id and leg order.
package cargorepo

import (
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// CargoDTO represents the database structure for persisting cargo aggregates.
// The tracking id is the natural primary key.
type CargoDTO struct {
	TrackingID      string      `gorm:"type:varchar(16);primaryKey"`
	Origin          string      `gorm:"type:varchar(5);not null"`
	Destination     string      `gorm:"type:varchar(5);not null"`
	ArrivalDeadline time.Time   `gorm:"not null"`
	Delivery        DeliveryDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Legs            []LegDTO    `gorm:"foreignKey:CargoTrackingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cargo entities.
// Overrides GORM's default naming convention to use "cargos".
func (CargoDTO) TableName() string {
	return "cargos"
}

// DeliveryDTO represents the embedded derived delivery snapshot within the
// cargo table. Statuses are stored in their wire form so rows stay readable.
type DeliveryDTO struct {
	TransportStatus          string     `gorm:"type:varchar(16);not null;index"`
	RoutingStatus            string     `gorm:"type:varchar(16);not null;index"`
	LastKnownLocation        *string    `gorm:"type:varchar(5)"`
	CurrentVoyageNumber      *string    `gorm:"type:varchar(10)"`
	IsMisdirected            bool       `gorm:"not null"`
	ETA                      *time.Time
	NextExpectedEventType    *string    `gorm:"type:varchar(16)"`
	NextExpectedLocation     *string    `gorm:"type:varchar(5)"`
	NextExpectedVoyageNumber *string    `gorm:"type:varchar(10)"`
	IsUnloadedAtDestination  bool       `gorm:"not null"`
	CalculatedAt             time.Time  `gorm:"not null"`
}

// LegDTO represents one itinerary leg of a cargo. LegIndex preserves the
// itinerary order.
type LegDTO struct {
	CargoTrackingID string    `gorm:"type:varchar(16);primaryKey"`
	LegIndex        int       `gorm:"primaryKey"`
	VoyageNumber    string    `gorm:"type:varchar(10);not null"`
	LoadLocation    string    `gorm:"type:varchar(5);not null"`
	UnloadLocation  string    `gorm:"type:varchar(5);not null"`
	LoadTime        time.Time `gorm:"not null"`
	UnloadTime      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for itinerary leg entities.
// Overrides GORM's default naming convention to use "legs".
func (LegDTO) TableName() string {
	return "legs"
}

// fromDomain converts a cargo domain aggregate to its database
// representation.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	trackingID := aggregate.TrackingID().String()
	routeSpecification := aggregate.RouteSpecification()

	var legs []LegDTO
	if itinerary := aggregate.Itinerary(); itinerary != nil {
		itineraryLegs := itinerary.Legs()
		legs = make([]LegDTO, 0, len(itineraryLegs))
		for i, leg := range itineraryLegs {
			legs = append(legs, LegDTO{
				CargoTrackingID: trackingID,
				LegIndex:        i,
				VoyageNumber:    leg.VoyageNumber().String(),
				LoadLocation:    leg.LoadLocation().String(),
				UnloadLocation:  leg.UnloadLocation().String(),
				LoadTime:        leg.LoadTime(),
				UnloadTime:      leg.UnloadTime(),
			})
		}
	}

	return CargoDTO{
		TrackingID:      trackingID,
		Origin:          routeSpecification.Origin().String(),
		Destination:     routeSpecification.Destination().String(),
		ArrivalDeadline: routeSpecification.ArrivalDeadline(),
		Delivery:        deliveryFromDomain(aggregate.Delivery()),
		Legs:            legs,
	}
}

func deliveryFromDomain(delivery cargo.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		TransportStatus:         delivery.TransportStatus().String(),
		RoutingStatus:           delivery.RoutingStatus().String(),
		IsMisdirected:           delivery.IsMisdirected(),
		ETA:                     delivery.ETA(),
		IsUnloadedAtDestination: delivery.IsUnloadedAtDestination(),
		CalculatedAt:            delivery.CalculatedAt(),
	}

	if loc := delivery.LastKnownLocation(); loc != nil {
		raw := loc.String()
		dto.LastKnownLocation = &raw
	}
	if number := delivery.CurrentVoyage(); number != nil {
		raw := number.String()
		dto.CurrentVoyageNumber = &raw
	}
	if activity := delivery.NextExpectedActivity(); activity != nil {
		eventType := activity.Type().String()
		location := activity.Location().String()
		dto.NextExpectedEventType = &eventType
		dto.NextExpectedLocation = &location
		if number := activity.VoyageNumber(); number != nil {
			raw := number.String()
			dto.NextExpectedVoyageNumber = &raw
		}
	}

	return dto
}

// toDomain converts a database DTO to a cargo domain aggregate.
// Legs must already be ordered by LegIndex.
func toDomain(dto CargoDTO) (*cargo.Cargo, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewUnLocode(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewUnLocode(dto.Destination)
	if err != nil {
		return nil, err
	}

	routeSpecification, err := cargo.NewRouteSpecification(origin, destination, dto.ArrivalDeadline)
	if err != nil {
		return nil, err
	}

	itinerary, err := itineraryToDomain(dto.Legs)
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(trackingID, routeSpecification, itinerary, delivery)
}

func itineraryToDomain(dtos []LegDTO) (*cargo.Itinerary, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	legs := make([]cargo.Leg, 0, len(dtos))
	for _, dto := range dtos {
		voyageNumber, err := voyage.NewNumber(dto.VoyageNumber)
		if err != nil {
			return nil, err
		}

		loadLocation, err := kernel.NewUnLocode(dto.LoadLocation)
		if err != nil {
			return nil, err
		}

		unloadLocation, err := kernel.NewUnLocode(dto.UnloadLocation)
		if err != nil {
			return nil, err
		}

		leg, err := cargo.NewLeg(
			voyageNumber, loadLocation, unloadLocation, dto.LoadTime, dto.UnloadTime)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func deliveryToDomain(dto DeliveryDTO) (cargo.Delivery, error) {
	transportStatus, err := cargo.TransportStatusFromString(dto.TransportStatus)
	if err != nil {
		return cargo.Delivery{}, err
	}

	routingStatus, err := cargo.RoutingStatusFromString(dto.RoutingStatus)
	if err != nil {
		return cargo.Delivery{}, err
	}

	var lastKnownLocation *kernel.UnLocode
	if dto.LastKnownLocation != nil {
		loc, locErr := kernel.NewUnLocode(*dto.LastKnownLocation)
		if locErr != nil {
			return cargo.Delivery{}, locErr
		}
		lastKnownLocation = &loc
	}

	var currentVoyage *voyage.Number
	if dto.CurrentVoyageNumber != nil {
		number, numberErr := voyage.NewNumber(*dto.CurrentVoyageNumber)
		if numberErr != nil {
			return cargo.Delivery{}, numberErr
		}
		currentVoyage = &number
	}

	nextExpectedActivity, err := activityToDomain(dto)
	if err != nil {
		return cargo.Delivery{}, err
	}

	return cargo.RestoreDelivery(
		transportStatus,
		routingStatus,
		lastKnownLocation,
		currentVoyage,
		dto.IsMisdirected,
		dto.ETA,
		nextExpectedActivity,
		dto.IsUnloadedAtDestination,
		dto.CalculatedAt,
	)
}

func activityToDomain(dto DeliveryDTO) (*cargo.HandlingActivity, error) {
	if dto.NextExpectedEventType == nil || dto.NextExpectedLocation == nil {
		return nil, nil
	}

	eventType, err := handling.EventTypeFromString(*dto.NextExpectedEventType)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewUnLocode(*dto.NextExpectedLocation)
	if err != nil {
		return nil, err
	}

	if dto.NextExpectedVoyageNumber != nil {
		number, numberErr := voyage.NewNumber(*dto.NextExpectedVoyageNumber)
		if numberErr != nil {
			return nil, numberErr
		}

		activity, activityErr := cargo.NewVoyageHandlingActivity(eventType, location, number)
		if activityErr != nil {
			return nil, activityErr
		}
		return &activity, nil
	}

	activity, err := cargo.NewHandlingActivity(eventType, location)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
