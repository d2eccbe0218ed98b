package commands

import (
	"context"
)

// ChangeDeadlineCommandHandler handles arrival deadline changes and persists
// the re-derived delivery snapshot.
type ChangeDeadlineCommandHandler struct {
	uowFactory CargoUoWFactory
}

// NewChangeDeadlineCommandHandler creates a handler for deadline change
// operations.
func NewChangeDeadlineCommandHandler(uowFactory CargoUoWFactory) ChangeDeadlineCommandHandler {
	return ChangeDeadlineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deadline change command.
func (h ChangeDeadlineCommandHandler) Handle(ctx context.Context, command ChangeDeadlineCommand) error {
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

	if err = aggregate.ChangeDeadline(command.ArrivalDeadline(), history); err != nil {
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
