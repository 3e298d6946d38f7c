package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrProviderAcceptOrderCommandIsNotConstructed = errors.New(
	"ProviderAcceptOrderCommand must be created via NewProviderAcceptOrderCommand constructor",
)

// ProviderAcceptOrderCommand represents a provider's attempt to claim a
// pending order. When several providers race, at most one claim succeeds.
type ProviderAcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProviderAcceptOrderCommand creates a command for a provider claim.
func NewProviderAcceptOrderCommand(orderID kernel.UUID, providerID kernel.UUID) (ProviderAcceptOrderCommand, error) {
	cmd := ProviderAcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProviderID(providerID),
	); err != nil {
		return ProviderAcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProviderAcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrProviderAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ProviderAcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProviderID returns the claiming provider.
func (c ProviderAcceptOrderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *ProviderAcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProviderAcceptOrderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
