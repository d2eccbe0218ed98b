package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// seedLocations is the reference data the service ships with. Booking and
// handling registration validate against these rows, so an empty locations
// table makes the service unusable.
var seedLocations = map[string]string{
	"USCHI": "Chicago",
	"USNYC": "New York",
	"USDAL": "Dallas",
	"NLRTM": "Rotterdam",
	"DEHAM": "Hamburg",
	"FIHEL": "Helsinki",
	"SESTO": "Stockholm",
	"CNHKG": "Hongkong",
	"CNSHA": "Shanghai",
	"JPTYO": "Tokyo",
	"AUMEL": "Melbourne",
}

type seedMovement struct {
	from      string
	to        string
	departure time.Duration
	arrival   time.Duration
}

// seedVoyages are sample schedules anchored at process start. Offsets keep
// the timetable in the near future so freshly booked cargo can be routed
// over them.
var seedVoyages = map[string][]seedMovement{
	"V0100": {
		{"USCHI", "USNYC", 24 * time.Hour, 36 * time.Hour},
		{"USNYC", "NLRTM", 48 * time.Hour, 10 * 24 * time.Hour},
	},
	"V0200": {
		{"NLRTM", "DEHAM", 11 * 24 * time.Hour, 12 * 24 * time.Hour},
		{"DEHAM", "FIHEL", 13 * 24 * time.Hour, 15 * 24 * time.Hour},
	},
	"V0300": {
		{"CNHKG", "JPTYO", 24 * time.Hour, 3 * 24 * time.Hour},
		{"JPTYO", "AUMEL", 4 * 24 * time.Hour, 9 * 24 * time.Hour},
	},
	"V0400": {
		{"CNSHA", "CNHKG", 12 * time.Hour, 36 * time.Hour},
	},
}

func mustSeedReferenceData(gormDB *gorm.DB, logger *slog.Logger) {
	ctx := context.Background()
	anchor := time.Now().UTC().Truncate(time.Hour)

	if err := seedLocationRows(ctx, gormDB); err != nil {
		log.Fatalf("Error seeding locations: %v", err)
	}
	if err := seedVoyageRows(ctx, gormDB, anchor); err != nil {
		log.Fatalf("Error seeding voyages: %v", err)
	}

	logger.Info("reference data seeded",
		"locations", len(seedLocations), "voyages", len(seedVoyages))
}

func seedLocationRows(ctx context.Context, gormDB *gorm.DB) error {
	repository := locationrepo.NewGormLocationRepository(gormDB)

	for code, name := range seedLocations {
		unLocode, err := kernel.NewUnLocode(code)
		if err != nil {
			return err
		}

		_, err = repository.Get(ctx, unLocode)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		loc, err := location.NewLocation(unLocode, name)
		if err != nil {
			return err
		}
		if err = repository.Add(ctx, loc); err != nil {
			return err
		}
	}

	return nil
}

func seedVoyageRows(ctx context.Context, gormDB *gorm.DB, anchor time.Time) error {
	repository := voyagerepo.NewGormVoyageRepository(gormDB)

	for number, movements := range seedVoyages {
		voyageNumber, err := voyage.NewNumber(number)
		if err != nil {
			return err
		}

		_, err = repository.Get(ctx, voyageNumber)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		sample, err := buildSeedVoyage(voyageNumber, movements, anchor)
		if err != nil {
			return err
		}
		if err = repository.Add(ctx, sample); err != nil {
			return err
		}
	}

	return nil
}

func buildSeedVoyage(
	number voyage.Number,
	movements []seedMovement,
	anchor time.Time,
) (*voyage.Voyage, error) {
	carrierMovements := make([]voyage.CarrierMovement, 0, len(movements))
	for _, m := range movements {
		from, err := kernel.NewUnLocode(m.from)
		if err != nil {
			return nil, err
		}
		to, err := kernel.NewUnLocode(m.to)
		if err != nil {
			return nil, err
		}

		movement, err := voyage.NewCarrierMovement(
			from, to, anchor.Add(m.departure), anchor.Add(m.arrival))
		if err != nil {
			return nil, err
		}
		carrierMovements = append(carrierMovements, movement)
	}

	schedule, err := voyage.NewSchedule(carrierMovements)
	if err != nil {
		return nil, err
	}

	return voyage.NewVoyage(number, schedule)
}
