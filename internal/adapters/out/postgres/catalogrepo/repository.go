// Package catalogrepo implements the product catalog port against the
// product and provider stock tables.
package catalogrepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
// Products are owned by the catalog side of the system; dispatch only reads
// prices and stock flags, so there is no DTO or aggregate here.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetPrices retrieves the current unit price for each product. Every
// requested product must exist; an unknown identifier fails the whole call
// so an order can never be priced from a partial catalog.
func (c *GormProductCatalog) GetPrices(
	ctx context.Context,
	productIDs []kernel.UUID,
) (map[kernel.UUID]float64, error) {
	raw := make([]uuid.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	rows, err := c.db.WithContext(ctx).Raw(
		"SELECT id, price FROM products WHERE id IN ?", raw,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[kernel.UUID]float64, len(productIDs))
	for rows.Next() {
		var id uuid.UUID
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		prices[productID] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range productIDs {
		if _, ok := prices[id]; !ok {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
	}

	return prices, nil
}

// ProviderStocks reports whether the provider carries every one of the given
// products as currently available. A product the provider lists but has
// marked unavailable does not count. Duplicate identifiers in the request
// are counted once.
func (c *GormProductCatalog) ProviderStocks(
	ctx context.Context,
	providerID kernel.UUID,
	productIDs []kernel.UUID,
) (bool, error) {
	if err := providerID.Validate(); err != nil {
		return false, err
	}

	distinct := make(map[kernel.UUID]struct{}, len(productIDs))
	raw := make([]uuid.UUID, 0, len(productIDs))
	for _, id := range productIDs {
		if err := id.Validate(); err != nil {
			return false, err
		}
		if _, seen := distinct[id]; seen {
			continue
		}
		distinct[id] = struct{}{}
		raw = append(raw, id.Bytes())
	}

	row := c.db.WithContext(ctx).Raw(
		"SELECT COUNT(DISTINCT product_id) FROM provider_products WHERE provider_id = ? AND product_id IN ? AND is_available",
		providerID.Bytes(), raw,
	).Row()

	var stocked int
	if err := row.Scan(&stocked); err != nil {
		return false, err
	}

	return stocked == len(raw), nil
}
