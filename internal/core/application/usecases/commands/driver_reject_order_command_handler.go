package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// DriverRejectOrderCommandHandler handles a driver declining an order in the
// driver pool. As with provider rejections there is no blacklisting; the same
// driver may still claim the order later.
type DriverRejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDriverRejectOrderCommandHandler creates a handler for driver rejections.
func NewDriverRejectOrderCommandHandler(uowFactory OrderUoWFactory) DriverRejectOrderCommandHandler {
	return DriverRejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver rejection. The domain transition verifies the
// order is still waiting for a driver.
func (h DriverRejectOrderCommandHandler) Handle(ctx context.Context, cmd DriverRejectOrderCommand) error {
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

	if err = rejectedOrder.RejectByDriver(); err != nil {
		return err
	}

	won, err := uow.OrderRepository().UpdateIfStatus(ctx, rejectedOrder, order.PendingDriver)
	if err != nil {
		return err
	}
	if !won {
		return ErrOrderNotAvailable
	}

	return uow.Commit(ctx)
}
