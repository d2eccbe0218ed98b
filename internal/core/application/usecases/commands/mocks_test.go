package commands_test

import (
	"context"
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *MockCargoRepository) Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, trackingID)
	return args.Bool(0), args.Error(1)
}

type MockHandlingEventRepository struct{ mock.Mock }

func (m *MockHandlingEventRepository) Add(ctx context.Context, event *handling.HandlingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHandlingEventRepository) HistoryOf(ctx context.Context, trackingID kernel.TrackingID) (handling.History, error) {
	args := m.Called(ctx, trackingID)
	return args.Get(0).(handling.History), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, loc *location.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, unLocode kernel.UnLocode) (*location.Location, error) {
	args := m.Called(ctx, unLocode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

type MockVoyageRepository struct{ mock.Mock }

func (m *MockVoyageRepository) Add(ctx context.Context, v *voyage.Voyage) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVoyageRepository) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voyage.Voyage), args.Error(1)
}

type MockBookingUoW struct{ mock.Mock }

func (m *MockBookingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockBookingUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockCargoUoW struct{ mock.Mock }

func (m *MockCargoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCargoUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockCargoUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

type MockCargoUoWFactory struct{ mock.Mock }

func (m *MockCargoUoWFactory) Create() commands.CargoUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) VoyageRepository() ports.VoyageRepository {
	args := m.Called()
	return args.Get(0).(ports.VoyageRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishCargoHandled(
	ctx context.Context,
	event *handling.HandlingEvent,
	delivery cargo.Delivery,
) error {
	args := m.Called(ctx, event, delivery)
	return args.Error(0)
}

func mustTrackingID(t *testing.T, value string) kernel.TrackingID {
	t.Helper()
	trackingID, err := kernel.NewTrackingID(value)
	require.NoError(t, err)
	return trackingID
}

func mustLocode(t *testing.T, value string) kernel.UnLocode {
	t.Helper()
	unLocode, err := kernel.NewUnLocode(value)
	require.NoError(t, err)
	return unLocode
}

func mustVoyageNumber(t *testing.T, value string) voyage.Number {
	t.Helper()
	number, err := voyage.NewNumber(value)
	require.NoError(t, err)
	return number
}

func buildLocation(t *testing.T, locode, name string) *location.Location {
	t.Helper()
	loc, err := location.NewLocation(mustLocode(t, locode), name)
	require.NoError(t, err)
	return loc
}

func buildVoyage(t *testing.T, number string) *voyage.Voyage {
	t.Helper()

	movement, err := voyage.NewCarrierMovement(
		mustLocode(t, "USCHI"), mustLocode(t, "FIHEL"),
		baseTime.Add(24*time.Hour), baseTime.Add(5*24*time.Hour))
	require.NoError(t, err)

	schedule, err := voyage.NewSchedule([]voyage.CarrierMovement{movement})
	require.NoError(t, err)

	v, err := voyage.NewVoyage(mustVoyageNumber(t, number), schedule)
	require.NoError(t, err)
	return v
}

// bookedCargo is a routed one-leg cargo Chicago -> Helsinki on V0100.
func bookedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()

	spec, err := cargo.NewRouteSpecification(
		mustLocode(t, "USCHI"), mustLocode(t, "FIHEL"), baseTime.Add(30*24*time.Hour))
	require.NoError(t, err)

	booked, err := cargo.NewCargo(mustTrackingID(t, "ABC123"), spec)
	require.NoError(t, err)

	leg, err := cargo.NewLeg(
		mustVoyageNumber(t, "V0100"),
		mustLocode(t, "USCHI"), mustLocode(t, "FIHEL"),
		baseTime.Add(24*time.Hour), baseTime.Add(5*24*time.Hour))
	require.NoError(t, err)

	itinerary, err := cargo.NewItinerary([]cargo.Leg{leg})
	require.NoError(t, err)

	require.NoError(t, booked.AssignItinerary(itinerary, handling.EmptyHistory()))
	return booked
}
