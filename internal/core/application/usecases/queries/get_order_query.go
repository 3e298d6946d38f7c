// Package queries contains read-only operations over the dispatch store.
// Query handlers read the database directly, bypassing the domain aggregates,
// and return flat response structures shaped for the transport layer.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse is a single order line in a query response.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// GetOrderQueryResponse carries the full order view: lifecycle state,
// snapshotted commercial terms, schedule, and the review if present.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	ProviderID    *kernel.UUID
	DriverID      *kernel.UUID
	SectorID      kernel.UUID
	Status        string
	PaymentStatus string
	PaymentMethod string
	TotalAmount   float64
	DeliveryFee   float64
	Immediate     bool
	DeliveryDate  *time.Time
	DeliveryTime  string
	Note          string
	OrderDate     time.Time
	Rating        *int
	Review        string
	Items         []OrderItemResponse
}
