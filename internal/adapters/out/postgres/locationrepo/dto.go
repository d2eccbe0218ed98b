// Package locationrepo provides data transfer objects and mapping functions
// for location reference data persistence. Locations are seeded once and read
// by the booking and handling flows.
package locationrepo

import (
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationDTO represents the database structure for persisting locations.
// The UN/LOCODE is the natural primary key.
type LocationDTO struct {
	UnLocode string `gorm:"type:varchar(5);primaryKey"`
	Name     string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for location entities.
// Overrides GORM's default naming convention to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location domain object to its database representation.
func fromDomain(loc *location.Location) LocationDTO {
	return LocationDTO{
		UnLocode: loc.UnLocode().String(),
		Name:     loc.Name(),
	}
}

// toDomain converts a database DTO to a location domain object.
func toDomain(dto LocationDTO) (*location.Location, error) {
	unLocode, err := kernel.NewUnLocode(dto.UnLocode)
	if err != nil {
		return nil, err
	}

	return location.NewLocation(unLocode, dto.Name)
}
