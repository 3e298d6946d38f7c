package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDriverAcceptOrderCommandIsNotConstructed = errors.New(
	"DriverAcceptOrderCommand must be created via NewDriverAcceptOrderCommand constructor",
)

// DriverAcceptOrderCommand represents a driver's attempt to claim an order
// that a provider has already accepted.
type DriverAcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriverAcceptOrderCommand creates a command for a driver claim.
func NewDriverAcceptOrderCommand(orderID kernel.UUID, driverID kernel.UUID) (DriverAcceptOrderCommand, error) {
	cmd := DriverAcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return DriverAcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverAcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrDriverAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c DriverAcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the claiming driver.
func (c DriverAcceptOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *DriverAcceptOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DriverAcceptOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
