package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// CancelOrderCommandHandler handles customer cancellations. A cancellation
// races with claims the same way claims race with each other: the update is
// conditional on the status observed in the transaction, so a customer cannot
// cancel an order a driver picked up a moment earlier.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationEnqueuer,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation.
// Returns ErrOrderNotAvailable when a concurrent claim moved the order first.
// When the order had already been claimed by a provider, the provider is
// notified that it is gone.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	cancelledOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observedStatus := cancelledOrder.Status()
	if err = cancelledOrder.Cancel(cmd.CustomerID()); err != nil {
		return err
	}

	won, err := uow.OrderRepository().UpdateIfStatus(ctx, cancelledOrder, observedStatus)
	if err != nil {
		return err
	}
	if !won {
		return ErrOrderNotAvailable
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cancelledOrder.Provider() != nil {
		h.notifier.Enqueue(ports.Notification{
			ID:         kernel.NewUUID(),
			Recipients: []kernel.UUID{*cancelledOrder.Provider()},
			Title:      "Order cancelled",
			Body:       "The customer cancelled the order",
			Data: map[string]string{
				"order_id": cancelledOrder.ID().String(),
				"event":    "order_cancelled",
			},
			CreatedAt: time.Now(),
		})
	}
	return nil
}
