// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// HandlingEventRepoFactory provides access to the handling event log within a transaction.
	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	// LocationRepoFactory provides access to location reference data within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// VoyageRepoFactory provides access to voyage reference data within a transaction.
	VoyageRepoFactory interface {
		VoyageRepository() ports.VoyageRepository
	}

	// BookingUoW manages transactions for booking and routing operations:
	// the cargo aggregate plus location reference data.
	BookingUoW interface {
		TxManager
		CargoRepoFactory
		LocationRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// CargoUoW manages transactions for operations touching a cargo and its
	// handling history.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}

	// UoW manages transactions across every aggregate: cargo, handling log,
	// and the location/voyage reference data. Used by handling event
	// registration, which validates against reference data, appends to the
	// log, and updates the cargo in one transaction.
	UoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
		LocationRepoFactory
		VoyageRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
