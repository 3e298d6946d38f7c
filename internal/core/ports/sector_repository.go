package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/sector"
)

// SectorRepository defines the persistence contract for sector aggregates.
type SectorRepository interface {
	// Add persists a new sector aggregate to storage.
	Add(ctx context.Context, aggregate *sector.Sector) error

	// Update persists changes to an existing sector aggregate.
	Update(ctx context.Context, aggregate *sector.Sector) error

	// Get retrieves a sector aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*sector.Sector, error)

	// GetAll retrieves every sector, active or not. Resolution filters on
	// the activation flag itself.
	GetAll(ctx context.Context) ([]*sector.Sector, error)
}
