package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// ProviderRejectOrderCommandHandler handles a provider declining a pending
// order. A rejection does not blacklist the provider; the order simply stays
// in the pool and the same provider may still claim it later.
type ProviderRejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewProviderRejectOrderCommandHandler creates a handler for provider rejections.
func NewProviderRejectOrderCommandHandler(uowFactory OrderUoWFactory) ProviderRejectOrderCommandHandler {
	return ProviderRejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provider rejection. The domain transition verifies the
// order is still waiting for a provider; rejecting an already claimed order
// is a conflict.
func (h ProviderRejectOrderCommandHandler) Handle(ctx context.Context, cmd ProviderRejectOrderCommand) error {
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

	rejectedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = rejectedOrder.RejectByProvider(); err != nil {
		return err
	}

	won, err := uow.OrderRepository().UpdateIfStatus(ctx, rejectedOrder, order.PendingProvider)
	if err != nil {
		return err
	}
	if !won {
		return ErrOrderNotAvailable
	}

	return uow.Commit(ctx)
}
