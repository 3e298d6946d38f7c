package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
		"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
	)
	ErrPoolStatusIsInvalid = errors.New("pool status must be pending_provider or pending_driver")
)

// GetAvailableOrdersQuery retrieves the claimable orders of a sector.
// Providers browse the pending_provider pool; drivers browse pending_driver.
type GetAvailableOrdersQuery struct { //nolint:recvcheck //using for validation
	sectorID kernel.UUID
	pool     order.Status

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates a query for a sector's claim pool.
// The pool must be one of the two pending statuses.
func NewGetAvailableOrdersQuery(sectorID kernel.UUID, pool order.Status) (GetAvailableOrdersQuery, error) {
	query := GetAvailableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setSectorID(sectorID),
		query.setPool(pool),
	); err != nil {
		return GetAvailableOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// SectorID returns the sector whose pool is requested.
func (q GetAvailableOrdersQuery) SectorID() kernel.UUID {
	return q.sectorID
}

// Pool returns the requested claim pool status.
func (q GetAvailableOrdersQuery) Pool() order.Status {
	return q.pool
}

func (q *GetAvailableOrdersQuery) setSectorID(sectorID kernel.UUID) error {
	if err := sectorID.Validate(); err != nil {
		return err
	}

	q.sectorID = sectorID
	return nil
}

func (q *GetAvailableOrdersQuery) setPool(pool order.Status) error {
	if pool != order.PendingProvider && pool != order.PendingDriver {
		return ErrPoolStatusIsInvalid
	}

	q.pool = pool
	return nil
}

// GetAvailableOrdersQueryResponse is a single claimable order.
type GetAvailableOrdersQueryResponse struct {
	ID          kernel.UUID
	TotalAmount float64
	DeliveryFee float64
	Immediate   bool
	Note        string
	OrderDate   time.Time
}
