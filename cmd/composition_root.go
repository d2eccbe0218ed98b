package cmd

import (
	"log/slog"

	"cargotracker/internal/adapters/out/kafka"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher([]string{config.KafkaHost}, config.KafkaCargoHandledTopic),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateBookCargoCommandHandler() commands.BookCargoCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignItineraryCommandHandler() commands.AssignItineraryCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignItineraryCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDestinationCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDeadlineCommandHandler() commands.ChangeDeadlineCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDeadlineCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() commands.RegisterHandlingEventCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHandlingEventCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateTrackCargoQueryHandler() queries.TrackCargoQueryHandler {
	return queries.NewTrackCargoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnroutedCargosQueryHandler() queries.GetUnroutedCargosQueryHandler {
	return queries.NewGetUnroutedCargosQueryHandler(c.gormDB)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
