package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its line items directly
// from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when no
// order with the given identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp         GetOrderQueryResponse
		id           uuid.UUID
		customerID   uuid.UUID
		providerID   uuid.NullUUID
		driverID     uuid.NullUUID
		sectorID     uuid.UUID
		deliveryDate sql.NullTime
		rating       sql.NullInt64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			provider_id,
			driver_id,
			sector_id,
			status,
			payment_status,
			payment_method,
			total_amount,
			delivery_fee,
			immediate,
			delivery_date,
			delivery_time,
			note,
			order_date,
			rating,
			review
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&providerID,
		&driverID,
		&sectorID,
		&resp.Status,
		&resp.PaymentStatus,
		&resp.PaymentMethod,
		&resp.TotalAmount,
		&resp.DeliveryFee,
		&resp.Immediate,
		&deliveryDate,
		&resp.DeliveryTime,
		&resp.Note,
		&resp.OrderDate,
		&rating,
		&resp.Review,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SectorID, err = kernel.UUIDFromBytes(sectorID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if providerID.Valid {
		converted, convErr := kernel.UUIDFromBytes(providerID.UUID[:])
		if convErr != nil {
			return GetOrderQueryResponse{}, convErr
		}
		resp.ProviderID = &converted
	}
	if driverID.Valid {
		converted, convErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if convErr != nil {
			return GetOrderQueryResponse{}, convErr
		}
		resp.DriverID = &converted
	}
	if deliveryDate.Valid {
		date := deliveryDate.Time
		resp.DeliveryDate = &date
	}
	if rating.Valid {
		value := int(rating.Int64)
		resp.Rating = &value
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item      OrderItemResponse
			productID uuid.UUID
		)

		if err = rows.Scan(&productID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice * float64(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
