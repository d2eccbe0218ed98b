package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookCargoCommand(t *testing.T) commands.BookCargoCommand {
	t.Helper()
	cmd, err := commands.NewBookCargoCommand(
		mustTrackingID(t, "ABC123"),
		mustLocode(t, "USCHI"),
		mustLocode(t, "FIHEL"),
		baseTime.Add(30*24*time.Hour),
	)
	require.NoError(t, err)
	return cmd
}

func TestNewBookCargoCommand_Validation(t *testing.T) {
	t.Run("should fail for zero deadline", func(t *testing.T) {
		_, err := commands.NewBookCargoCommand(
			mustTrackingID(t, "ABC123"),
			mustLocode(t, "USCHI"),
			mustLocode(t, "FIHEL"),
			time.Time{},
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero command fails validation", func(t *testing.T) {
		var cmd commands.BookCargoCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrBookCargoCommandIsNotConstructed)
	})
}

func TestBookCargoCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := bookCargoCommand(t)

	cargoRepo := new(MockCargoRepository)
	locationRepo := new(MockLocationRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", mock.Anything, cmd.Origin()).
			Return(buildLocation(t, "USCHI", "Chicago"), nil).Once(),
		locationRepo.On("Get", mock.Anything, cmd.Destination()).
			Return(buildLocation(t, "FIHEL", "Helsinki"), nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Add", mock.Anything, mock.AnythingOfType("*cargo.Cargo")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBookCargoCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	cargoRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestBookCargoCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.BookCargoCommand{} // not constructed properly

	factory := new(MockBookingUoWFactory)
	h := commands.NewBookCargoCommandHandler(factory)

	require.Error(t, h.Handle(ctx, cmd))
}

func TestBookCargoCommandHandler_Handle_UnknownOrigin(t *testing.T) {
	ctx := context.Background()
	cmd := bookCargoCommand(t)
	notFound := errs.NewObjectNotFoundError("unLocode", cmd.Origin())

	locationRepo := new(MockLocationRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", mock.Anything, cmd.Origin()).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBookCargoCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestBookCargoCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	cmd := bookCargoCommand(t)

	cargoRepo := new(MockCargoRepository)
	locationRepo := new(MockLocationRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Get", mock.Anything, cmd.Origin()).
			Return(buildLocation(t, "USCHI", "Chicago"), nil).Once(),
		locationRepo.On("Get", mock.Anything, cmd.Destination()).
			Return(buildLocation(t, "FIHEL", "Helsinki"), nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Add", mock.Anything, mock.AnythingOfType("*cargo.Cargo")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBookCargoCommandHandler(factory)

	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
