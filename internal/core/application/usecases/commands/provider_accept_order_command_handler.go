package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ProviderAcceptOrderCommandHandler handles a provider's claim on a pending
// order. The claim is exactly-once: the status precondition on the conditional
// update guarantees that when several providers race, exactly one wins and
// the rest receive ErrOrderNotAvailable.
//
// Example:
//
//	handler := NewProviderAcceptOrderCommandHandler(uowFactory, enqueuer)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotAvailable):
//	    // Another provider claimed the order first
//	case errors.Is(err, ErrActorNotEligible):
//	    // Wrong sector, off duty, or products not stocked
//	}
type ProviderAcceptOrderCommandHandler struct {
	uowFactory ProviderClaimUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewProviderAcceptOrderCommandHandler creates a handler for provider claims.
func NewProviderAcceptOrderCommandHandler(
	uowFactory ProviderClaimUoWFactory,
	notifier ports.NotificationEnqueuer,
) ProviderAcceptOrderCommandHandler {
	return ProviderAcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the provider claim.
// Verifies the provider's standing, sector, and stock, applies the domain
// transition, and persists it with a status precondition. On success the
// sector's available drivers are notified that the order needs a courier.
func (h ProviderAcceptOrderCommandHandler) Handle(ctx context.Context, cmd ProviderAcceptOrderCommand) error {
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

	claimedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	claimingProvider, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	if claimingProvider.IsBlocked() {
		return ErrActorBlocked
	}

	if !claimingProvider.CanAcceptInSector(claimedOrder.SectorID()) {
		return ErrActorNotEligible
	}

	productIDs := make([]kernel.UUID, 0, len(claimedOrder.Items()))
	for _, item := range claimedOrder.Items() {
		productIDs = append(productIDs, item.ProductID())
	}

	stocked, err := uow.ProductCatalog().ProviderStocks(ctx, cmd.ProviderID(), productIDs)
	if err != nil {
		return err
	}
	if !stocked {
		return ErrActorNotEligible
	}

	if err = claimedOrder.AcceptByProvider(cmd.ProviderID()); err != nil {
		return err
	}

	won, err := uow.OrderRepository().UpdateIfStatus(ctx, claimedOrder, order.PendingProvider)
	if err != nil {
		return err
	}
	if !won {
		return ErrOrderNotAvailable
	}

	drivers, err := uow.DriverRepository().GetAvailableBySector(ctx, claimedOrder.SectorID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyDrivers(claimedOrder, drivers)
	return nil
}

func (h ProviderAcceptOrderCommandHandler) notifyDrivers(claimedOrder *order.Order, drivers []*driver.Driver) {
	if len(drivers) == 0 {
		return
	}

	recipients := make([]kernel.UUID, 0, len(drivers))
	for _, d := range drivers {
		recipients = append(recipients, d.ID())
	}

	h.notifier.Enqueue(ports.Notification{
		ID:         kernel.NewUUID(),
		Recipients: recipients,
		Title:      "Order needs a driver",
		Body:       "An accepted order is waiting for pickup in your sector",
		Data: map[string]string{
			"order_id": claimedOrder.ID().String(),
			"event":    "order_accepted_by_provider",
		},
		CreatedAt: time.Now(),
	})
}
