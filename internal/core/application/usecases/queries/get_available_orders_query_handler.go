package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler reads a sector's claim pool from the
// database. The list is advisory; claiming still goes through the
// conditional update, so a listed order may already be gone.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for claim pool queries.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query. Oldest orders come first so long-waiting orders
// surface at the top of the pool.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]GetAvailableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_amount,
			delivery_fee,
			immediate,
			note,
			order_date
		FROM orders
		WHERE sector_id = ? AND status = ?
		ORDER BY order_date
	`, query.SectorID().String(), query.Pool().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetAvailableOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp GetAvailableOrdersQueryResponse
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&resp.TotalAmount,
			&resp.DeliveryFee,
			&resp.Immediate,
			&resp.Note,
			&resp.OrderDate,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
