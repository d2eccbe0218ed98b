package commands

import (
	"context"
)

// ChangeDestinationCommandHandler handles destination changes. The new
// destination must exist in the location reference data; the cargo's
// delivery is re-derived, which can flip it to MISROUTED with zero new
// events.
type ChangeDestinationCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeDestinationCommandHandler creates a handler for destination
// change operations. The full unit of work is required: reference data,
// the cargo, and its handling history are all read in one transaction.
func NewChangeDestinationCommandHandler(uowFactory UoWFactory) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the destination change command.
func (h ChangeDestinationCommandHandler) Handle(ctx context.Context, command ChangeDestinationCommand) error {
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

	if _, err := uow.LocationRepository().Get(ctx, command.Destination()); err != nil {
		return err
	}

	cargoRepo := uow.CargoRepository()
	aggregate, err := cargoRepo.Get(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().HistoryOf(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeDestination(command.Destination(), history); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
