package handling_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEvent(
	t *testing.T,
	trackingID string,
	eventType handling.EventType,
	locode string,
	voyageNumber *voyage.Number,
	completionTime time.Time,
	registrationTime time.Time,
) *handling.HandlingEvent {
	t.Helper()

	event, err := handling.NewHandlingEvent(
		kernel.NewUUID(),
		mustTrackingID(t, trackingID),
		eventType,
		mustLocode(t, locode),
		voyageNumber,
		completionTime,
		registrationTime,
	)
	require.NoError(t, err)
	return event
}

func TestNewHistory(t *testing.T) {
	baseTime := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should create history from events of one cargo", func(t *testing.T) {
		events := []*handling.HandlingEvent{
			buildEvent(t, "ABC123", handling.Receive, "USCHI", nil, baseTime, baseTime),
			buildEvent(t, "ABC123", handling.Load, "USCHI",
				mustVoyageNumber(t, "V0100"), baseTime.Add(time.Hour), baseTime.Add(time.Hour)),
		}

		history, err := handling.NewHistory(events)

		require.NoError(t, err)
		assert.False(t, history.IsEmpty())

		trackingID, ok := history.TrackingID()
		require.True(t, ok)
		assert.Equal(t, "ABC123", trackingID.String())
	})

	t.Run("should create empty history from nil slice", func(t *testing.T) {
		history, err := handling.NewHistory(nil)

		require.NoError(t, err)
		assert.True(t, history.IsEmpty())

		_, ok := history.TrackingID()
		assert.False(t, ok)
	})

	t.Run("should fail when events belong to different cargos", func(t *testing.T) {
		events := []*handling.HandlingEvent{
			buildEvent(t, "ABC123", handling.Receive, "USCHI", nil, baseTime, baseTime),
			buildEvent(t, "XYZ789", handling.Receive, "USNYC", nil, baseTime, baseTime),
		}

		_, err := handling.NewHistory(events)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for unconstructed event", func(t *testing.T) {
		events := []*handling.HandlingEvent{
			{},
		}

		_, err := handling.NewHistory(events)

		require.Error(t, err)
		assert.ErrorIs(t, err, handling.ErrHandlingEventIsNotConstructed)
	})

	t.Run("should copy the supplied slice", func(t *testing.T) {
		first := buildEvent(t, "ABC123", handling.Receive, "USCHI", nil, baseTime, baseTime)
		events := []*handling.HandlingEvent{first}

		history, err := handling.NewHistory(events)
		require.NoError(t, err)

		events[0] = buildEvent(t, "ABC123", handling.Claim, "FIHEL", nil,
			baseTime.Add(time.Hour), baseTime.Add(time.Hour))

		ordered := history.DistinctEventsByCompletionTime()
		require.Len(t, ordered, 1)
		assert.Equal(t, handling.Receive, ordered[0].Type())
	})
}

func TestHistory_DistinctEventsByCompletionTime(t *testing.T) {
	baseTime := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should order events by completion time regardless of insertion order", func(t *testing.T) {
		receive := buildEvent(t, "ABC123", handling.Receive, "USCHI", nil,
			baseTime, baseTime.Add(3*time.Hour))
		load := buildEvent(t, "ABC123", handling.Load, "USCHI",
			mustVoyageNumber(t, "V0100"), baseTime.Add(time.Hour), baseTime.Add(time.Hour))
		unload := buildEvent(t, "ABC123", handling.Unload, "USNYC",
			mustVoyageNumber(t, "V0100"), baseTime.Add(2*time.Hour), baseTime.Add(2*time.Hour))

		history, err := handling.NewHistory([]*handling.HandlingEvent{unload, receive, load})
		require.NoError(t, err)

		ordered := history.DistinctEventsByCompletionTime()

		require.Len(t, ordered, 3)
		assert.True(t, ordered[0].IsEqual(receive))
		assert.True(t, ordered[1].IsEqual(load))
		assert.True(t, ordered[2].IsEqual(unload))
	})

	t.Run("should break completion time ties by registration time", func(t *testing.T) {
		stale := buildEvent(t, "ABC123", handling.Receive, "USCHI", nil,
			baseTime, baseTime.Add(time.Minute))
		correction := buildEvent(t, "ABC123", handling.Receive, "USNYC", nil,
			baseTime, baseTime.Add(time.Hour))

		history, err := handling.NewHistory([]*handling.HandlingEvent{correction, stale})
		require.NoError(t, err)

		ordered := history.DistinctEventsByCompletionTime()

		require.Len(t, ordered, 2)
		assert.True(t, ordered[0].IsEqual(stale))
		assert.True(t, ordered[1].IsEqual(correction))
	})

	t.Run("should collapse a replayed report keeping the later registration", func(t *testing.T) {
		original := buildEvent(t, "ABC123", handling.Load, "USCHI",
			mustVoyageNumber(t, "V0100"), baseTime, baseTime.Add(time.Minute))
		replay := buildEvent(t, "ABC123", handling.Load, "USCHI",
			mustVoyageNumber(t, "V0100"), baseTime, baseTime.Add(time.Hour))

		history, err := handling.NewHistory([]*handling.HandlingEvent{replay, original})
		require.NoError(t, err)

		ordered := history.DistinctEventsByCompletionTime()

		require.Len(t, ordered, 1)
		assert.True(t, ordered[0].IsEqual(replay))
	})

	t.Run("should keep reports that differ in any attribute", func(t *testing.T) {
		loadChicago := buildEvent(t, "ABC123", handling.Load, "USCHI",
			mustVoyageNumber(t, "V0100"), baseTime, baseTime)
		loadNewYork := buildEvent(t, "ABC123", handling.Load, "USNYC",
			mustVoyageNumber(t, "V0100"), baseTime, baseTime)
		loadOtherVoyage := buildEvent(t, "ABC123", handling.Load, "USCHI",
			mustVoyageNumber(t, "V0200"), baseTime, baseTime)

		history, err := handling.NewHistory(
			[]*handling.HandlingEvent{loadChicago, loadNewYork, loadOtherVoyage})
		require.NoError(t, err)

		assert.Len(t, history.DistinctEventsByCompletionTime(), 3)
	})
}

func TestHistory_MostRecentlyCompletedEvent(t *testing.T) {
	baseTime := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should return nil for empty history", func(t *testing.T) {
		assert.Nil(t, handling.EmptyHistory().MostRecentlyCompletedEvent())
	})

	t.Run("should return the event with the latest completion time", func(t *testing.T) {
		receive := buildEvent(t, "ABC123", handling.Receive, "USCHI", nil,
			baseTime, baseTime)
		load := buildEvent(t, "ABC123", handling.Load, "USCHI",
			mustVoyageNumber(t, "V0100"), baseTime.Add(time.Hour), baseTime.Add(time.Hour))

		history, err := handling.NewHistory([]*handling.HandlingEvent{load, receive})
		require.NoError(t, err)

		assert.True(t, history.MostRecentlyCompletedEvent().IsEqual(load))
	})

	t.Run("should prefer the later registered event on a completion time tie", func(t *testing.T) {
		stale := buildEvent(t, "ABC123", handling.Receive, "USCHI", nil,
			baseTime, baseTime.Add(time.Minute))
		correction := buildEvent(t, "ABC123", handling.Receive, "USNYC", nil,
			baseTime, baseTime.Add(time.Hour))

		history, err := handling.NewHistory([]*handling.HandlingEvent{stale, correction})
		require.NoError(t, err)

		assert.True(t, history.MostRecentlyCompletedEvent().IsEqual(correction))
	})
}

func TestHistory_MostRecentNonCustomsEvent(t *testing.T) {
	baseTime := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("should return nil for empty history", func(t *testing.T) {
		assert.Nil(t, handling.EmptyHistory().MostRecentNonCustomsEvent())
	})

	t.Run("should skip trailing customs events", func(t *testing.T) {
		unload := buildEvent(t, "ABC123", handling.Unload, "USNYC",
			mustVoyageNumber(t, "V0100"), baseTime, baseTime)
		customs := buildEvent(t, "ABC123", handling.Customs, "USNYC", nil,
			baseTime.Add(time.Hour), baseTime.Add(time.Hour))

		history, err := handling.NewHistory([]*handling.HandlingEvent{unload, customs})
		require.NoError(t, err)

		assert.True(t, history.MostRecentlyCompletedEvent().IsEqual(customs))
		assert.True(t, history.MostRecentNonCustomsEvent().IsEqual(unload))
	})

	t.Run("should return nil when only customs events exist", func(t *testing.T) {
		customs := buildEvent(t, "ABC123", handling.Customs, "USNYC", nil,
			baseTime, baseTime)

		history, err := handling.NewHistory([]*handling.HandlingEvent{customs})
		require.NoError(t, err)

		assert.Nil(t, history.MostRecentNonCustomsEvent())
	})
}
