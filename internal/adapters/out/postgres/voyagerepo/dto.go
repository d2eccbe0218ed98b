// Package voyagerepo provides data transfer objects and mapping functions
// for voyage reference data persistence. A voyage is stored together with
// its ordered carrier movements.
package voyagerepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageDTO represents the database structure for persisting voyages.
// The voyage number is the natural primary key; movements link back to it.
type VoyageDTO struct {
	Number    string               `gorm:"type:varchar(10);primaryKey"`
	Movements []CarrierMovementDTO `gorm:"foreignKey:VoyageNumber;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for voyage entities.
// Overrides GORM's default naming convention to use "voyages".
func (VoyageDTO) TableName() string {
	return "voyages"
}

// CarrierMovementDTO represents one scheduled movement of a voyage.
// MovementIndex preserves the schedule order.
type CarrierMovementDTO struct {
	VoyageNumber      string    `gorm:"type:varchar(10);primaryKey"`
	MovementIndex     int       `gorm:"primaryKey"`
	DepartureLocation string    `gorm:"type:varchar(5);not null"`
	ArrivalLocation   string    `gorm:"type:varchar(5);not null"`
	DepartureTime     time.Time `gorm:"not null"`
	ArrivalTime       time.Time `gorm:"not null"`
}

// TableName specifies the database table name for carrier movement entities.
// Overrides GORM's default naming convention to use "carrier_movements".
func (CarrierMovementDTO) TableName() string {
	return "carrier_movements"
}

// fromDomain converts a voyage domain object to its database representation.
func fromDomain(v *voyage.Voyage) VoyageDTO {
	number := v.Number().String()
	schedule := v.Schedule().CarrierMovements()
	movements := make([]CarrierMovementDTO, 0, len(schedule))

	for i, movement := range schedule {
		movements = append(movements, CarrierMovementDTO{
			VoyageNumber:      number,
			MovementIndex:     i,
			DepartureLocation: movement.DepartureLocation().String(),
			ArrivalLocation:   movement.ArrivalLocation().String(),
			DepartureTime:     movement.DepartureTime(),
			ArrivalTime:       movement.ArrivalTime(),
		})
	}

	return VoyageDTO{
		Number:    number,
		Movements: movements,
	}
}

// toDomain converts a database DTO to a voyage domain object.
// Movements must already be ordered by MovementIndex.
func toDomain(dto VoyageDTO) (*voyage.Voyage, error) {
	number, err := voyage.NewNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	movements := make([]voyage.CarrierMovement, 0, len(dto.Movements))
	for _, movementDto := range dto.Movements {
		movement, movementErr := movementToDomain(movementDto)
		if movementErr != nil {
			return nil, movementErr
		}
		movements = append(movements, movement)
	}

	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		return nil, err
	}

	return voyage.NewVoyage(number, schedule)
}

func movementToDomain(dto CarrierMovementDTO) (voyage.CarrierMovement, error) {
	departureLocation, err := kernel.NewUnLocode(dto.DepartureLocation)
	if err != nil {
		return voyage.CarrierMovement{}, err
	}

	arrivalLocation, err := kernel.NewUnLocode(dto.ArrivalLocation)
	if err != nil {
		return voyage.CarrierMovement{}, err
	}

	return voyage.NewCarrierMovement(
		departureLocation, arrivalLocation, dto.DepartureTime, dto.ArrivalTime)
}
