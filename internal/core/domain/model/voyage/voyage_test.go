package voyage_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocode(t *testing.T, code string) kernel.UnLocode {
	t.Helper()
	locode, err := kernel.NewUnLocode(code)
	require.NoError(t, err)
	return locode
}

func TestNewNumber(t *testing.T) {
	t.Run("should create valid voyage number", func(t *testing.T) {
		number, err := voyage.NewNumber("V0100")

		require.NoError(t, err)
		require.NoError(t, number.Validate())
		assert.Equal(t, "V0100", number.String())
	})

	t.Run("should uppercase and trim input", func(t *testing.T) {
		number, err := voyage.NewNumber(" v0200 ")

		require.NoError(t, err)
		assert.Equal(t, "V0200", number.String())
	})

	t.Run("should fail with empty string", func(t *testing.T) {
		_, err := voyage.NewNumber("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "voyageNumber")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var number voyage.Number

		require.Error(t, number.Validate())
	})
}

func TestNewCarrierMovement(t *testing.T) {
	departure := mustLocode(t, "SESTO")
	arrival := mustLocode(t, "FIHEL")
	departureTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	arrivalTime := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	t.Run("should create valid movement", func(t *testing.T) {
		movement, err := voyage.NewCarrierMovement(departure, arrival, departureTime, arrivalTime)

		require.NoError(t, err)
		require.NoError(t, movement.Validate())
		assert.True(t, movement.DepartureLocation().IsEqual(departure))
		assert.True(t, movement.ArrivalLocation().IsEqual(arrival))
		assert.Equal(t, departureTime, movement.DepartureTime())
		assert.Equal(t, arrivalTime, movement.ArrivalTime())
	})

	t.Run("should fail with unconstructed location", func(t *testing.T) {
		var invalid kernel.UnLocode

		_, err := voyage.NewCarrierMovement(invalid, arrival, departureTime, arrivalTime)

		require.Error(t, err)
	})

	t.Run("should fail with zero times", func(t *testing.T) {
		_, err := voyage.NewCarrierMovement(departure, arrival, time.Time{}, arrivalTime)

		require.Error(t, err)
	})

	t.Run("should fail when departure is not before arrival", func(t *testing.T) {
		_, err := voyage.NewCarrierMovement(departure, arrival, arrivalTime, departureTime)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not before arrival")
	})
}

func TestNewSchedule(t *testing.T) {
	first, err := voyage.NewCarrierMovement(
		mustLocode(t, "SESTO"), mustLocode(t, "FIHEL"),
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	second, err := voyage.NewCarrierMovement(
		mustLocode(t, "FIHEL"), mustLocode(t, "DEHAM"),
		time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 4, 20, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	t.Run("should create schedule from ordered movements", func(t *testing.T) {
		schedule, scheduleErr := voyage.NewSchedule([]voyage.CarrierMovement{first, second})

		require.NoError(t, scheduleErr)
		require.NoError(t, schedule.Validate())
		assert.Len(t, schedule.CarrierMovements(), 2)
	})

	t.Run("should fail with empty movements", func(t *testing.T) {
		_, scheduleErr := voyage.NewSchedule(nil)

		require.Error(t, scheduleErr)
	})

	t.Run("should fail with out of order movements", func(t *testing.T) {
		_, scheduleErr := voyage.NewSchedule([]voyage.CarrierMovement{second, first})

		require.Error(t, scheduleErr)
		assert.Contains(t, scheduleErr.Error(), "departs before")
	})

	t.Run("should fail with unconstructed movement", func(t *testing.T) {
		var zero voyage.CarrierMovement

		_, scheduleErr := voyage.NewSchedule([]voyage.CarrierMovement{zero})

		require.Error(t, scheduleErr)
	})
}

func TestNewVoyage(t *testing.T) {
	number, err := voyage.NewNumber("V0300")
	require.NoError(t, err)

	movement, err := voyage.NewCarrierMovement(
		mustLocode(t, "NLRTM"), mustLocode(t, "DEHAM"),
		time.Date(2026, 4, 1, 6, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 23, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	schedule, err := voyage.NewSchedule([]voyage.CarrierMovement{movement})
	require.NoError(t, err)

	t.Run("should create valid voyage", func(t *testing.T) {
		v, voyageErr := voyage.NewVoyage(number, schedule)

		require.NoError(t, voyageErr)
		require.NoError(t, v.Validate())
		assert.True(t, v.Number().IsEqual(number))
		assert.Len(t, v.Schedule().CarrierMovements(), 1)
	})

	t.Run("should fail with unconstructed number", func(t *testing.T) {
		var invalid voyage.Number

		v, voyageErr := voyage.NewVoyage(invalid, schedule)

		require.Error(t, voyageErr)
		assert.Nil(t, v)
	})

	t.Run("should fail with unconstructed schedule", func(t *testing.T) {
		var invalid voyage.Schedule

		v, voyageErr := voyage.NewVoyage(number, invalid)

		require.Error(t, voyageErr)
		assert.Nil(t, v)
	})

	t.Run("should fail validation for nil voyage", func(t *testing.T) {
		var v *voyage.Voyage

		err := v.Validate()

		require.Error(t, err)
		assert.Equal(t, voyage.ErrVoyageIsNotConstructed, err)
	})
}
