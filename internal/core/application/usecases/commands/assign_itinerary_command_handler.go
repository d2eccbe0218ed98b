package commands

import (
	"context"
)

// AssignItineraryCommandHandler handles itinerary assignment. Loads the
// cargo and its handling history, replaces the route plan, and persists the
// re-derived delivery snapshot in one transaction.
type AssignItineraryCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewAssignItineraryCommandHandler creates a handler for itinerary
// assignment operations.
func NewAssignItineraryCommandHandler(uowFactory CargoUoWFactory) AssignItineraryCommandHandler {
	return AssignItineraryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Assigning a new plan forgives an
// earlier MISROUTED state: the delivery is re-derived from scratch against
// the new itinerary.
func (h AssignItineraryCommandHandler) Handle(ctx context.Context, command AssignItineraryCommand) error {
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

	cargoRepo := uow.CargoRepository()
	aggregate, err := cargoRepo.Get(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().HistoryOf(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignItinerary(command.Itinerary(), history); err != nil {
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
