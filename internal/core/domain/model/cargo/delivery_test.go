package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireActivity(
	t *testing.T,
	activity *cargo.HandlingActivity,
	eventType handling.EventType,
	locode string,
	voyageNumber string,
) {
	t.Helper()

	require.NotNil(t, activity)
	assert.Equal(t, eventType, activity.Type())
	assert.Equal(t, locode, activity.Location().String())
	if voyageNumber == "" {
		assert.Nil(t, activity.VoyageNumber())
	} else {
		require.NotNil(t, activity.VoyageNumber())
		assert.Equal(t, voyageNumber, activity.VoyageNumber().String())
	}
}

func TestDeriveDelivery_FreshBooking(t *testing.T) {
	spec := mustRouteSpec(t, "USCHI", "FIHEL", baseTime.Add(30*24*time.Hour))

	delivery := cargo.DeriveDelivery(spec, nil, handling.EmptyHistory(), nil)

	require.NoError(t, delivery.Validate())
	assert.Equal(t, cargo.NotReceived, delivery.TransportStatus())
	assert.Equal(t, cargo.NotRouted, delivery.RoutingStatus())
	assert.Nil(t, delivery.LastKnownLocation())
	assert.Nil(t, delivery.CurrentVoyage())
	assert.False(t, delivery.IsMisdirected())
	assert.Nil(t, delivery.ETA())
	assert.Nil(t, delivery.NextExpectedActivity())
	assert.False(t, delivery.IsUnloadedAtDestination())
	assert.True(t, delivery.CalculatedAt().IsZero())
}

func TestDeriveDelivery_ItineraryAssignedNoEvents(t *testing.T) {
	spec := mustRouteSpec(t, "USCHI", "FIHEL", baseTime.Add(30*24*time.Hour))
	itinerary := threeLegItinerary(t)

	delivery := cargo.DeriveDelivery(spec, itinerary, handling.EmptyHistory(), nil)

	assert.Equal(t, cargo.NotReceived, delivery.TransportStatus())
	assert.Equal(t, cargo.Routed, delivery.RoutingStatus())
	assert.False(t, delivery.IsMisdirected())

	requireActivity(t, delivery.NextExpectedActivity(), handling.Receive, "USCHI", "")

	require.NotNil(t, delivery.ETA())
	assert.True(t, delivery.ETA().Equal(baseTime.Add(13*24*time.Hour)))
}

func TestDeriveDelivery_OnTrackProgression(t *testing.T) {
	spec := mustRouteSpec(t, "USCHI", "FIHEL", baseTime.Add(30*24*time.Hour))
	itinerary := threeLegItinerary(t)

	receive := buildEvent(t, handling.Receive, "USCHI", "", baseTime.Add(12*time.Hour))
	load := buildEvent(t, handling.Load, "USCHI", "V0100", baseTime.Add(24*time.Hour))
	unload := buildEvent(t, handling.Unload, "USNYC", "V0100", baseTime.Add(3*24*time.Hour))

	t.Run("after receive at origin", func(t *testing.T) {
		delivery := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, receive), nil)

		assert.Equal(t, cargo.InPort, delivery.TransportStatus())
		assert.Equal(t, cargo.Routed, delivery.RoutingStatus())
		require.NotNil(t, delivery.LastKnownLocation())
		assert.Equal(t, "USCHI", delivery.LastKnownLocation().String())
		assert.Nil(t, delivery.CurrentVoyage())
		assert.True(t, delivery.CalculatedAt().Equal(receive.CompletionTime()))

		requireActivity(t, delivery.NextExpectedActivity(), handling.Load, "USCHI", "V0100")
	})

	t.Run("after load on the first voyage", func(t *testing.T) {
		delivery := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, receive, load), nil)

		assert.Equal(t, cargo.OnboardCarrier, delivery.TransportStatus())
		require.NotNil(t, delivery.CurrentVoyage())
		assert.Equal(t, "V0100", delivery.CurrentVoyage().String())

		requireActivity(t, delivery.NextExpectedActivity(), handling.Unload, "USNYC", "V0100")
	})

	t.Run("after unload at an intermediate port", func(t *testing.T) {
		delivery := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, receive, load, unload), nil)

		assert.Equal(t, cargo.InPort, delivery.TransportStatus())
		assert.Nil(t, delivery.CurrentVoyage())
		assert.False(t, delivery.IsUnloadedAtDestination())

		requireActivity(t, delivery.NextExpectedActivity(), handling.Load, "USNYC", "V0200")
	})

	t.Run("after unload at the final destination", func(t *testing.T) {
		atDestination := buildEvent(t, handling.Unload, "FIHEL", "V0300",
			baseTime.Add(13*24*time.Hour))

		delivery := cargo.DeriveDelivery(spec, itinerary,
			mustHistory(t, receive, load, unload, atDestination), nil)

		assert.True(t, delivery.IsUnloadedAtDestination())
		requireActivity(t, delivery.NextExpectedActivity(), handling.Claim, "FIHEL", "")
	})

	t.Run("after claim", func(t *testing.T) {
		claim := buildEvent(t, handling.Claim, "FIHEL", "", baseTime.Add(14*24*time.Hour))

		delivery := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, receive, load, claim), nil)

		assert.Equal(t, cargo.Claimed, delivery.TransportStatus())
		assert.Nil(t, delivery.ETA())
		assert.Nil(t, delivery.NextExpectedActivity())
	})
}

func TestDeriveDelivery_Misdirection(t *testing.T) {
	spec := mustRouteSpec(t, "USCHI", "FIHEL", baseTime.Add(30*24*time.Hour))
	itinerary := threeLegItinerary(t)

	t.Run("load off the route flips the cargo to misrouted", func(t *testing.T) {
		stray := buildEvent(t, handling.Load, "DEHAM", "V0999", baseTime.Add(24*time.Hour))

		delivery := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, stray), nil)

		assert.True(t, delivery.IsMisdirected())
		assert.Equal(t, cargo.Misrouted, delivery.RoutingStatus())
		assert.Nil(t, delivery.ETA())
		assert.Nil(t, delivery.NextExpectedActivity())
		require.NotNil(t, delivery.LastKnownLocation())
		assert.Equal(t, "DEHAM", delivery.LastKnownLocation().String(),
			"a misdirected cargo still reports where it is")
	})

	t.Run("misrouted is sticky until a new itinerary is assigned", func(t *testing.T) {
		stray := buildEvent(t, handling.Load, "DEHAM", "V0999", baseTime.Add(24*time.Hour))
		previous := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, stray), nil)

		backOnPlan := buildEvent(t, handling.Unload, "USNYC", "V0100", baseTime.Add(3*24*time.Hour))
		delivery := cargo.DeriveDelivery(spec, itinerary,
			mustHistory(t, stray, backOnPlan), &previous)

		assert.False(t, delivery.IsMisdirected(), "latest event matches the plan")
		assert.Equal(t, cargo.Misrouted, delivery.RoutingStatus())
		assert.Nil(t, delivery.ETA())
	})

	t.Run("deriving without previous state forgives the deviation", func(t *testing.T) {
		stray := buildEvent(t, handling.Load, "DEHAM", "V0999", baseTime.Add(24*time.Hour))
		backOnPlan := buildEvent(t, handling.Unload, "USNYC", "V0100", baseTime.Add(3*24*time.Hour))

		delivery := cargo.DeriveDelivery(spec, itinerary,
			mustHistory(t, stray, backOnPlan), nil)

		assert.Equal(t, cargo.Routed, delivery.RoutingStatus())
		requireActivity(t, delivery.NextExpectedActivity(), handling.Load, "USNYC", "V0200")
	})

	t.Run("itinerary not reaching the destination is misrouted with no events", func(t *testing.T) {
		rerouted := mustRouteSpec(t, "USCHI", "SESTO", baseTime.Add(30*24*time.Hour))

		delivery := cargo.DeriveDelivery(rerouted, itinerary, handling.EmptyHistory(), nil)

		assert.Equal(t, cargo.Misrouted, delivery.RoutingStatus())
		assert.False(t, delivery.IsMisdirected())
		assert.Nil(t, delivery.ETA())
		assert.Nil(t, delivery.NextExpectedActivity())
	})
}

func TestDeriveDelivery_Customs(t *testing.T) {
	spec := mustRouteSpec(t, "USCHI", "FIHEL", baseTime.Add(30*24*time.Hour))
	itinerary := threeLegItinerary(t)

	t.Run("customs keeps the cargo in port and does not advance the plan", func(t *testing.T) {
		load := buildEvent(t, handling.Load, "USCHI", "V0100", baseTime.Add(24*time.Hour))
		customs := buildEvent(t, handling.Customs, "USNYC", "", baseTime.Add(2*24*time.Hour))

		delivery := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, load, customs), nil)

		assert.Equal(t, cargo.InPort, delivery.TransportStatus())
		assert.False(t, delivery.IsMisdirected())
		requireActivity(t, delivery.NextExpectedActivity(), handling.Unload, "USNYC", "V0100")
	})

	t.Run("customs before any other event still expects receive", func(t *testing.T) {
		customs := buildEvent(t, handling.Customs, "USCHI", "", baseTime.Add(time.Hour))

		delivery := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, customs), nil)

		requireActivity(t, delivery.NextExpectedActivity(), handling.Receive, "USCHI", "")
	})
}

func TestDeriveDelivery_Purity(t *testing.T) {
	spec := mustRouteSpec(t, "USCHI", "FIHEL", baseTime.Add(30*24*time.Hour))
	itinerary := threeLegItinerary(t)

	receive := buildEvent(t, handling.Receive, "USCHI", "", baseTime.Add(12*time.Hour))
	load := buildEvent(t, handling.Load, "USCHI", "V0100", baseTime.Add(24*time.Hour))
	unload := buildEvent(t, handling.Unload, "USNYC", "V0100", baseTime.Add(3*24*time.Hour))

	t.Run("deriving twice from the same inputs yields identical snapshots", func(t *testing.T) {
		history := mustHistory(t, receive, load, unload)

		first := cargo.DeriveDelivery(spec, itinerary, history, nil)
		second := cargo.DeriveDelivery(spec, itinerary, history, nil)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("insertion order of events does not matter", func(t *testing.T) {
		first := cargo.DeriveDelivery(spec, itinerary,
			mustHistory(t, receive, load, unload), nil)
		second := cargo.DeriveDelivery(spec, itinerary,
			mustHistory(t, unload, receive, load), nil)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("a later registered correction with the same completion time wins", func(t *testing.T) {
		completionTime := baseTime.Add(3 * 24 * time.Hour)
		stale := buildEvent(t, handling.Unload, "USNYC", "V0100", completionTime)
		correction := buildEvent(t, handling.Unload, "NLRTM", "V0200", completionTime)
		// buildEvent registers at the completion time; re-register the
		// correction two hours later.
		corrected, err := handling.NewHandlingEvent(
			correction.ID(), correction.TrackingID(), correction.Type(),
			correction.Location(), correction.VoyageNumber(),
			completionTime, completionTime.Add(2*time.Hour))
		require.NoError(t, err)

		delivery := cargo.DeriveDelivery(spec, itinerary,
			mustHistory(t, stale, corrected), nil)

		require.NotNil(t, delivery.LastKnownLocation())
		assert.Equal(t, "NLRTM", delivery.LastKnownLocation().String())
		requireActivity(t, delivery.NextExpectedActivity(), handling.Load, "NLRTM", "V0300")
	})
}

func TestRestoreDelivery(t *testing.T) {
	spec := mustRouteSpec(t, "USCHI", "FIHEL", baseTime.Add(30*24*time.Hour))
	itinerary := threeLegItinerary(t)
	receive := buildEvent(t, handling.Receive, "USCHI", "", baseTime.Add(12*time.Hour))

	t.Run("should round-trip a derived snapshot", func(t *testing.T) {
		derived := cargo.DeriveDelivery(spec, itinerary, mustHistory(t, receive), nil)

		restored, err := cargo.RestoreDelivery(
			derived.TransportStatus(),
			derived.RoutingStatus(),
			derived.LastKnownLocation(),
			derived.CurrentVoyage(),
			derived.IsMisdirected(),
			derived.ETA(),
			derived.NextExpectedActivity(),
			derived.IsUnloadedAtDestination(),
			derived.CalculatedAt(),
		)

		require.NoError(t, err)
		assert.True(t, derived.IsEqual(restored))
	})

	t.Run("should fail for malformed statuses", func(t *testing.T) {
		_, err := cargo.RestoreDelivery(
			cargo.TransportStatus(42), cargo.Routed,
			nil, nil, false, nil, nil, false, time.Time{})

		require.Error(t, err)
	})
}
