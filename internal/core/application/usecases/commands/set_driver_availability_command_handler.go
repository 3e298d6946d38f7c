package commands

import (
	"context"
)

// SetDriverAvailabilityCommandHandler flips a driver's on-duty switch.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverAvailabilityCommandHandler creates a handler for the driver availability toggle.
func NewSetDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle. A blocked driver cannot put
// itself back on duty; the aggregate rejects the change.
func (h SetDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetDriverAvailabilityCommand) error {
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

	toggledDriver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = toggledDriver.SetAvailability(cmd.Available()); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, toggledDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
