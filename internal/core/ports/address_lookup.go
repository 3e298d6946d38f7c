package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// AddressLookup resolves a customer's stored address to its coordinates.
// Orders reference addresses by identifier; the dispatch flow only needs the
// point to resolve the serving sector.
type AddressLookup interface {
	// GetPoint retrieves the coordinates of the address. The address must
	// belong to the given customer.
	GetPoint(ctx context.Context, customerID kernel.UUID, addressID kernel.UUID) (kernel.Point, error)
}
