package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// StartDeliveryToCustomerCommandHandler advances an order from the pickup leg
// to the drop-off leg.
type StartDeliveryToCustomerCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewStartDeliveryToCustomerCommandHandler creates a handler for the drop-off leg.
func NewStartDeliveryToCustomerCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationEnqueuer,
) StartDeliveryToCustomerCommandHandler {
	return StartDeliveryToCustomerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the drop-off leg report and notifies the customer.
func (h StartDeliveryToCustomerCommandHandler) Handle(ctx context.Context, cmd StartDeliveryToCustomerCommand) error {
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

	activeOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = activeOrder.StartToCustomer(cmd.DriverID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, activeOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Enqueue(ports.Notification{
		ID:         kernel.NewUUID(),
		Recipients: []kernel.UUID{activeOrder.CustomerID()},
		Title:      "Order on the way",
		Body:       "Your driver is heading to you",
		Data: map[string]string{
			"order_id": activeOrder.ID().String(),
			"event":    "order_on_the_way_customer",
		},
		CreatedAt: time.Now(),
	})
	return nil
}
