package cargo_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/cargo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingStatus(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		for input, expected := range map[string]cargo.RoutingStatus{
			"NOT_ROUTED": cargo.NotRouted,
			"ROUTED":     cargo.Routed,
			"MISROUTED":  cargo.Misrouted,
		} {
			parsed, err := cargo.RoutingStatusFromString(input)

			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
			assert.Equal(t, input, parsed.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := cargo.RoutingStatusFromString("LOST")

		require.Error(t, err)
		require.Error(t, cargo.RoutingStatusUnknown.Validate())
		require.Error(t, cargo.RoutingStatus(42).Validate())
	})
}

func TestTransportStatus(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		for input, expected := range map[string]cargo.TransportStatus{
			"NOT_RECEIVED":    cargo.NotReceived,
			"IN_PORT":         cargo.InPort,
			"ONBOARD_CARRIER": cargo.OnboardCarrier,
			"CLAIMED":         cargo.Claimed,
		} {
			parsed, err := cargo.TransportStatusFromString(input)

			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
			assert.Equal(t, input, parsed.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := cargo.TransportStatusFromString("TELEPORTED")

		require.Error(t, err)
		require.Error(t, cargo.TransportStatusUnknown.Validate())
	})
}
