package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrProviderRejectOrderCommandIsNotConstructed = errors.New(
	"ProviderRejectOrderCommand must be created via NewProviderRejectOrderCommand constructor",
)

// ProviderRejectOrderCommand represents a provider declining a pending order.
// The order stays in the provider pool for the rest of the sector.
type ProviderRejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProviderRejectOrderCommand creates a command for a provider rejection.
func NewProviderRejectOrderCommand(orderID kernel.UUID, providerID kernel.UUID) (ProviderRejectOrderCommand, error) {
	cmd := ProviderRejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProviderID(providerID),
	); err != nil {
		return ProviderRejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProviderRejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrProviderRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order being declined.
func (c ProviderRejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProviderID returns the declining provider.
func (c ProviderRejectOrderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *ProviderRejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProviderRejectOrderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
