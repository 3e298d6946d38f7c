package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// StartDeliveryToProviderCommandHandler advances an accepted order to the
// pickup leg. Only the assigned driver may report delivery legs; the domain
// transition enforces both the caller and the ordering of the legs.
type StartDeliveryToProviderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewStartDeliveryToProviderCommandHandler creates a handler for the pickup leg.
func NewStartDeliveryToProviderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationEnqueuer,
) StartDeliveryToProviderCommandHandler {
	return StartDeliveryToProviderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the pickup leg report and notifies the customer.
func (h StartDeliveryToProviderCommandHandler) Handle(ctx context.Context, cmd StartDeliveryToProviderCommand) error {
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

	if err = activeOrder.StartToProvider(cmd.DriverID()); err != nil {
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
		Body:       "Your driver is heading to the provider",
		Data: map[string]string{
			"order_id": activeOrder.ID().String(),
			"event":    "order_on_the_way_provider",
		},
		CreatedAt: time.Now(),
	})
	return nil
}
