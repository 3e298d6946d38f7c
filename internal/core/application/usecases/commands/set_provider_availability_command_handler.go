package commands

import (
	"context"
)

// SetProviderAvailabilityCommandHandler flips a provider's on-duty switch.
// Off-duty providers stop receiving dispatch notifications and cannot claim
// orders; existing claims are unaffected.
type SetProviderAvailabilityCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewSetProviderAvailabilityCommandHandler creates a handler for the provider availability toggle.
func NewSetProviderAvailabilityCommandHandler(uowFactory ProviderUoWFactory) SetProviderAvailabilityCommandHandler {
	return SetProviderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle. A blocked provider cannot put
// itself back on duty; the aggregate rejects the change.
func (h SetProviderAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetProviderAvailabilityCommand) error {
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

	toggledProvider, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	if err = toggledProvider.SetAvailability(cmd.Available()); err != nil {
		return err
	}

	if err = uow.ProviderRepository().Update(ctx, toggledProvider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
