package commands

import (
	"context"
	"log/slog"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/ports"
)

// RegisterHandlingEventCommandHandler handles handling event registration:
// the write path every tracking update flows through.
//
// The factory validates the report against reference data, the event is
// appended to the log, and the cargo's delivery is re-derived from the full
// history - all in one transaction, so no intermediate inconsistent state is
// ever observable. After the commit the outcome is fanned out through the
// event publisher; fan-out is best-effort and never fails the registration.
type RegisterHandlingEventCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewRegisterHandlingEventCommandHandler creates a handler for handling
// event registration operations.
func NewRegisterHandlingEventCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RegisterHandlingEventCommandHandler {
	return RegisterHandlingEventCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the registration command. A report that does not resolve
// against reference data fails with handling.CannotCreateHandlingEventError;
// a report that contradicts the itinerary succeeds and books the cargo as
// misdirected.
func (h RegisterHandlingEventCommandHandler) Handle(ctx context.Context, command RegisterHandlingEventCommand) error {
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
	handlingRepo := uow.HandlingEventRepository()

	factory := handling.NewHandlingEventFactory(
		cargoRepo, uow.LocationRepository(), uow.VoyageRepository())

	event, err := factory.CreateHandlingEvent(
		ctx,
		time.Now().UTC(),
		command.CompletionTime(),
		command.TrackingID(),
		command.VoyageNumber(),
		command.UnLocode(),
		command.EventType(),
	)
	if err != nil {
		return err
	}

	if err = handlingRepo.Add(ctx, event); err != nil {
		return err
	}

	history, err := handlingRepo.HistoryOf(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	aggregate, err := cargoRepo.Get(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	aggregate.DeriveDeliveryProgress(history)

	if err = cargoRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishCargoHandled(ctx, event, aggregate.Delivery()); err != nil {
		h.logger.WarnContext(ctx, "cargo handled fan-out failed",
			"trackingId", command.TrackingID().String(),
			"eventType", command.EventType().String(),
			"error", err)
	}

	return nil
}
