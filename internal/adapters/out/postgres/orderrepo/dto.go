// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status, sector, and claim assignment.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	ProviderID    *uuid.UUID `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	SectorID      uuid.UUID  `gorm:"type:uuid;index"`
	TotalAmount   float64
	DeliveryFee   float64
	PaymentMethod string
	PaymentStatus string
	Immediate     bool
	DeliveryDate  *time.Time
	DeliveryTime  string
	Note          string
	OrderDate     time.Time
	Rating        *int
	Review        string
	Status        string `gorm:"index"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line. Lines are immutable after
// creation; only the order row itself is ever updated.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UnitPrice float64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var providerID *uuid.UUID
	if id := aggregate.Provider(); id != nil {
		raw := id.Bytes()
		providerID = &raw
	}

	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		ProviderID:    providerID,
		DriverID:      driverID,
		SectorID:      aggregate.SectorID().Bytes(),
		TotalAmount:   aggregate.TotalAmount(),
		DeliveryFee:   aggregate.DeliveryFee(),
		PaymentMethod: aggregate.PaymentMethod(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Immediate:     aggregate.Immediate(),
		DeliveryDate:  aggregate.DeliveryDate(),
		DeliveryTime:  aggregate.DeliveryTime(),
		Note:          aggregate.Note(),
		OrderDate:     aggregate.OrderDate(),
		Rating:        aggregate.Rating(),
		Review:        aggregate.Review(),
		Status:        aggregate.Status().String(),
		Items:         items,
	}
}

// updateColumns builds the column map for order row updates. A map is used
// rather than the DTO struct so cleared claims (nil provider or driver) and
// false booleans are written out instead of being skipped as zero values.
func updateColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"provider_id":    dto.ProviderID,
		"driver_id":      dto.DriverID,
		"payment_status": dto.PaymentStatus,
		"rating":         dto.Rating,
		"review":         dto.Review,
		"status":         dto.Status,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including claims and review using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	sectorID, err := kernel.UUIDFromBytes(dto.SectorID[:])
	if err != nil {
		return nil, err
	}

	var providerID *kernel.UUID
	if dto.ProviderID != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.ProviderID)[:])
		if convErr != nil {
			return nil, convErr
		}
		providerID = &converted
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		converted, convErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if convErr != nil {
			return nil, convErr
		}
		driverID = &converted
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		providerID,
		driverID,
		sectorID,
		items,
		dto.DeliveryFee,
		dto.PaymentMethod,
		paymentStatus,
		dto.Immediate,
		dto.DeliveryDate,
		dto.DeliveryTime,
		dto.Note,
		dto.OrderDate,
		dto.Rating,
		dto.Review,
		status,
	)
}
