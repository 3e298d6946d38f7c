package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// DriverAcceptOrderCommandHandler handles a driver's claim on an order that
// a provider has accepted. Like the provider claim it is exactly-once, with
// one extra precondition enforced by the storage layer: a driver may carry
// only one in-progress order at a time, even when two claims for different
// orders race.
type DriverAcceptOrderCommandHandler struct {
	uowFactory DriverClaimUoWFactory
	notifier   ports.NotificationEnqueuer
}

// NewDriverAcceptOrderCommandHandler creates a handler for driver claims.
func NewDriverAcceptOrderCommandHandler(
	uowFactory DriverClaimUoWFactory,
	notifier ports.NotificationEnqueuer,
) DriverAcceptOrderCommandHandler {
	return DriverAcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the driver claim.
// Verifies the driver's standing and sector, applies the domain transition,
// and persists it with both the status precondition and the one-active-order
// precondition. On success the customer and the provider are notified.
func (h DriverAcceptOrderCommandHandler) Handle(ctx context.Context, cmd DriverAcceptOrderCommand) error {
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

	claimingDriver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if claimingDriver.IsBlocked() {
		return ErrActorBlocked
	}

	if !claimingDriver.CanAcceptInSector(claimedOrder.SectorID()) {
		return ErrActorNotEligible
	}

	if err = claimedOrder.AcceptByDriver(cmd.DriverID()); err != nil {
		return err
	}

	won, err := uow.OrderRepository().ClaimForDriver(ctx, claimedOrder, order.PendingDriver)
	if err != nil {
		return err
	}
	if !won {
		return ErrOrderNotAvailable
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyClaim(claimedOrder)
	return nil
}

func (h DriverAcceptOrderCommandHandler) notifyClaim(claimedOrder *order.Order) {
	recipients := []kernel.UUID{claimedOrder.CustomerID()}
	if claimedOrder.Provider() != nil {
		recipients = append(recipients, *claimedOrder.Provider())
	}

	h.notifier.Enqueue(ports.Notification{
		ID:         kernel.NewUUID(),
		Recipients: recipients,
		Title:      "Driver assigned",
		Body:       "A driver has taken your order",
		Data: map[string]string{
			"order_id": claimedOrder.ID().String(),
			"event":    "order_accepted_by_driver",
		},
		CreatedAt: time.Now(),
	})
}
