// Package ports defines repository and gateway interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Alongside the usual CRUD operations it exposes the conditional updates
// that back the exactly-once claim protocol: concurrent claimers race on a
// status precondition and at most one wins.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate unconditionally.
	// Use UpdateIfStatus or ClaimForDriver for racing transitions.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists the aggregate only if the stored row is still
	// in the expected status. Returns false when another writer moved the
	// order first; the aggregate's new state is then discarded.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error)

	// ClaimForDriver persists a driver claim only if the stored row is still
	// in the expected status AND the claiming driver has no other order in an
	// in-progress status. Returns false when either precondition fails.
	ClaimForDriver(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error)

	// UpdateIfUnrated persists the aggregate only if the stored row carries
	// no rating yet. Backs the once-only review rule against concurrent
	// review requests.
	UpdateIfUnrated(ctx context.Context, aggregate *order.Order) (bool, error)

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByDriver retrieves the driver's current in-progress order,
	// if any. Returns ErrRecordNotFound semantics via errs.ObjectNotFoundError
	// when the driver is free.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*order.Order, error)

	// GetStalePendingProvider retrieves immediate orders that have been
	// waiting for a provider claim since before the given cutoff.
	// Used by the re-notification job.
	GetStalePendingProvider(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
