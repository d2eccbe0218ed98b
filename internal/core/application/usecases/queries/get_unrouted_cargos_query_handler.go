package queries

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetUnroutedCargosQueryHandler retrieves cargos without an assigned
// itinerary from the database.
//
// Example:
//
//	handler := NewGetUnroutedCargosQueryHandler(db)
//	query := NewGetUnroutedCargosQuery()
//
//	unrouted, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unrouted cargos: %v", err)
//	    return err
//	}
type GetUnroutedCargosQueryHandler struct {
	db *gorm.DB
}

// NewGetUnroutedCargosQueryHandler creates a handler for unrouted cargo
// queries. Requires a GORM database connection for query execution.
func NewGetUnroutedCargosQueryHandler(db *gorm.DB) GetUnroutedCargosQueryHandler {
	return GetUnroutedCargosQueryHandler{db: db}
}

// Handle executes the query to retrieve all cargos in NOT_ROUTED status.
// Results are sorted by tracking id for consistent output.
func (h GetUnroutedCargosQueryHandler) Handle(
	ctx context.Context,
	query GetUnroutedCargosQuery,
) ([]GetUnroutedCargosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cargos := make([]GetUnroutedCargosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin,
			destination,
			arrival_deadline
		FROM cargos
		WHERE delivery_routing_status = ?
		ORDER BY tracking_id
	`, cargo.NotRouted.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			trackingID, origin, destination string
			arrivalDeadline                 time.Time
		)

		if err = rows.Scan(&trackingID, &origin, &destination, &arrivalDeadline); err != nil {
			return nil, err
		}

		var cargoResp GetUnroutedCargosQueryResponse
		if cargoResp.TrackingID, err = kernel.NewTrackingID(trackingID); err != nil {
			return nil, err
		}
		if cargoResp.Origin, err = kernel.NewUnLocode(origin); err != nil {
			return nil, err
		}
		if cargoResp.Destination, err = kernel.NewUnLocode(destination); err != nil {
			return nil, err
		}
		cargoResp.ArrivalDeadline = arrivalDeadline
		cargos = append(cargos, cargoResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargos, nil
}
