package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// ProductCatalog exposes the product data the dispatch flow needs: current
// prices for snapshotting at order creation, and the provider stock check
// performed before a provider claim.
type ProductCatalog interface {
	// GetPrices retrieves the current unit price for each product.
	// Unknown product identifiers yield an errs.ObjectNotFoundError.
	GetPrices(ctx context.Context, productIDs []kernel.UUID) (map[kernel.UUID]float64, error)

	// ProviderStocks reports whether the provider carries every one of the
	// given products.
	ProviderStocks(ctx context.Context, providerID kernel.UUID, productIDs []kernel.UUID) (bool, error)
}
