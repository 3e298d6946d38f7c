package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// CompleteOrderCommandHandler finishes a delivery. The domain transition
// marks the order completed and flips the payment status to paid, since
// payment is settled on handover.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationEnqueuer,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion report and notifies the customer.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = activeOrder.Complete(cmd.DriverID()); err != nil {
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
		Title:      "Order delivered",
		Body:       "Your order has been delivered, enjoy",
		Data: map[string]string{
			"order_id": activeOrder.ID().String(),
			"event":    "order_completed",
		},
		CreatedAt: time.Now(),
	})
	return nil
}
