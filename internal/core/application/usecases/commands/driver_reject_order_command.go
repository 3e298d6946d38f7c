package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDriverRejectOrderCommandIsNotConstructed = errors.New(
	"DriverRejectOrderCommand must be created via NewDriverRejectOrderCommand constructor",
)

// DriverRejectOrderCommand represents a driver declining an order waiting
// for pickup. The order stays in the driver pool for the rest of the sector.
type DriverRejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDriverRejectOrderCommand creates a command for a driver rejection.
func NewDriverRejectOrderCommand(orderID kernel.UUID, driverID kernel.UUID) (DriverRejectOrderCommand, error) {
	cmd := DriverRejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return DriverRejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverRejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrDriverRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order being declined.
func (c DriverRejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the declining driver.
func (c DriverRejectOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *DriverRejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DriverRejectOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
