package queries_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackCargoQuery_Valid(t *testing.T) {
	trackingID, err := kernel.NewTrackingID("ABC123")
	require.NoError(t, err)

	query, err := queries.NewTrackCargoQuery(trackingID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, trackingID, query.TrackingID())
}

func TestNewTrackCargoQuery_ZeroTrackingID(t *testing.T) {
	_, err := queries.NewTrackCargoQuery(kernel.TrackingID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTrackCargoQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackCargoQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackCargoQueryIsNotConstructed)
}
