package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// BookCargoCommandHandler handles the business logic for cargo booking.
// Verifies both locations against reference data and creates the cargo in
// NOT_ROUTED state with a delivery derived from its (empty) history.
type BookCargoCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewBookCargoCommandHandler creates a handler for cargo booking operations.
// Requires a BookingUoWFactory for transactional persistence.
func NewBookCargoCommandHandler(uowFactory BookingUoWFactory) BookCargoCommandHandler {
	return BookCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command. Both locations must resolve against
// the location repository; unknown codes surface as errs.ObjectNotFoundError.
func (h BookCargoCommandHandler) Handle(ctx context.Context, command BookCargoCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locationRepo := uow.LocationRepository()
	if _, err := locationRepo.Get(ctx, command.Origin()); err != nil {
		return err
	}
	if _, err := locationRepo.Get(ctx, command.Destination()); err != nil {
		return err
	}

	routeSpecification, err := cargo.NewRouteSpecification(
		command.Origin(), command.Destination(), command.ArrivalDeadline())
	if err != nil {
		return err
	}

	booked, err := cargo.NewCargo(command.TrackingID(), routeSpecification)
	if err != nil {
		return err
	}

	if err = uow.CargoRepository().Add(ctx, booked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
