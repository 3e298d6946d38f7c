package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for provider aggregates.
type ProviderRepository interface {
	// Add persists a new provider aggregate to storage.
	Add(ctx context.Context, aggregate *provider.Provider) error

	// Update persists changes to an existing provider aggregate.
	Update(ctx context.Context, aggregate *provider.Provider) error

	// Get retrieves a provider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error)

	// GetAvailableBySector retrieves the providers eligible for dispatch
	// notifications in the given sector: available and not blocked.
	GetAvailableBySector(ctx context.Context, sectorID kernel.UUID) ([]*provider.Provider, error)
}
