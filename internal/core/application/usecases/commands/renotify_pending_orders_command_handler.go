package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// RenotifyPendingOrdersCommandHandler re-broadcasts immediate orders that
// no provider has claimed within the stale window. Each stale order is fanned
// out to the available providers of its sector again, so a missed push does
// not strand an order forever.
type RenotifyPendingOrdersCommandHandler struct {
	uowFactory RenotifyUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewRenotifyPendingOrdersCommandHandler creates a handler for the stale-order sweep.
func NewRenotifyPendingOrdersCommandHandler(
	uowFactory RenotifyUoWFactory,
	notifier ports.NotificationEnqueuer,
) RenotifyPendingOrdersCommandHandler {
	return RenotifyPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the sweep. A sweep with nothing stale is a no-op, not an
// error. The fan-out happens only after a successful read commit, and orders
// whose sector has no available providers are skipped until the next sweep.
func (h RenotifyPendingOrdersCommandHandler) Handle(ctx context.Context, cmd RenotifyPendingOrdersCommand) error {
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

	cutoff := time.Now().Add(-cmd.StaleAfter())
	staleOrders, err := uow.OrderRepository().GetStalePendingProvider(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(staleOrders) == 0 {
		return uow.Commit(ctx)
	}

	recipientsByOrder := make(map[kernel.UUID][]kernel.UUID, len(staleOrders))
	for _, staleOrder := range staleOrders {
		providers, err := uow.ProviderRepository().GetAvailableBySector(ctx, staleOrder.SectorID())
		if err != nil {
			return err
		}

		recipients := make([]kernel.UUID, 0, len(providers))
		for _, p := range providers {
			recipients = append(recipients, p.ID())
		}
		recipientsByOrder[staleOrder.ID()] = recipients
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, staleOrder := range staleOrders {
		h.renotify(staleOrder, recipientsByOrder[staleOrder.ID()])
	}

	return nil
}

func (h RenotifyPendingOrdersCommandHandler) renotify(staleOrder *order.Order, recipients []kernel.UUID) {
	if len(recipients) == 0 {
		return
	}

	h.notifier.Enqueue(ports.Notification{
		ID:         kernel.NewUUID(),
		Recipients: recipients,
		Title:      "Order still waiting",
		Body:       "An unclaimed order is waiting in your sector",
		Data: map[string]string{
			"order_id": staleOrder.ID().String(),
			"event":    "order_renotified",
		},
		CreatedAt: time.Now(),
	})
}
