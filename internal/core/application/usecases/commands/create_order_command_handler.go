package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/provider"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the delivery address to a sector, snapshots product prices and the
// sector's delivery fee, persists the order in pending provider status, and
// fans a dispatch notification out to the sector's available providers.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, enqueuer)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrSectorNotFound) {
//	    // Address is outside the service area
//	}
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CreateOrderUoWFactory for transactional persistence and a
// NotificationEnqueuer for the post-commit provider fan-out.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	notifier ports.NotificationEnqueuer,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
// Returns services.ErrSectorNotFound when no active sector contains the
// delivery address. The notification fan-out happens only after a successful
// commit, so providers are never notified about orders that failed to persist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	point, err := uow.AddressLookup().GetPoint(ctx, cmd.CustomerID(), cmd.AddressID())
	if err != nil {
		return err
	}

	sectors, err := uow.SectorRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	orderSector, err := services.NewSectorResolver().Resolve(point, sectors)
	if err != nil {
		return err
	}

	items, err := h.buildItems(ctx, uow, cmd.Lines())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		orderSector.ID(),
		items,
		orderSector.DeliveryFee(),
		cmd.PaymentMethod(),
		cmd.Immediate(),
		cmd.DeliveryDate(),
		cmd.DeliveryTime(),
		cmd.Note(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	providers, err := uow.ProviderRepository().GetAvailableBySector(ctx, orderSector.ID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyProviders(newOrder, providers)
	return nil
}

func (h CreateOrderCommandHandler) buildItems(
	ctx context.Context,
	uow CreateOrderUoW,
	lines []OrderLine,
) ([]order.Item, error) {
	productIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	prices, err := uow.ProductCatalog().GetPrices(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.ProductID, line.Quantity, prices[line.ProductID])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (h CreateOrderCommandHandler) notifyProviders(newOrder *order.Order, providers []*provider.Provider) {
	if len(providers) == 0 {
		return
	}

	recipients := make([]kernel.UUID, 0, len(providers))
	for _, p := range providers {
		recipients = append(recipients, p.ID())
	}

	h.notifier.Enqueue(ports.Notification{
		ID:         kernel.NewUUID(),
		Recipients: recipients,
		Title:      "New order",
		Body:       "A new order is waiting in your sector",
		Data: map[string]string{
			"order_id": newOrder.ID().String(),
			"event":    "order_created",
		},
		CreatedAt: time.Now(),
	})
}
