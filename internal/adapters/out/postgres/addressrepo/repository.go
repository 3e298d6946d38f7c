// Package addressrepo implements the address lookup port against the
// customer address table.
package addressrepo

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressLookup implements AddressLookup using GORM.
// Addresses are owned by the customer-facing side of the system; dispatch
// only reads coordinates, so there is no DTO or aggregate here.
type GormAddressLookup struct {
	db *gorm.DB
}

// NewGormAddressLookup creates a new GORM address lookup.
func NewGormAddressLookup(db *gorm.DB) *GormAddressLookup {
	return &GormAddressLookup{db: db}
}

// GetPoint retrieves the coordinates of the customer's address. The customer
// filter doubles as an ownership check: another customer's address behaves
// exactly like a missing one.
func (l *GormAddressLookup) GetPoint(
	ctx context.Context,
	customerID kernel.UUID,
	addressID kernel.UUID,
) (kernel.Point, error) {
	if err := errors.Join(customerID.Validate(), addressID.Validate()); err != nil {
		return kernel.Point{}, err
	}

	row := l.db.WithContext(ctx).Raw(
		"SELECT lat, lng FROM addresses WHERE id = ? AND customer_id = ?",
		addressID.Bytes(), customerID.Bytes(),
	).Row()

	var lat, lng float64
	if err := row.Scan(&lat, &lng); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.Point{}, errs.NewObjectNotFoundError("address", addressID.String())
		}
		return kernel.Point{}, err
	}

	return kernel.NewPoint(lat, lng)
}
