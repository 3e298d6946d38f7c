package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartDeliveryToCustomerCommandIsNotConstructed = errors.New(
	"StartDeliveryToCustomerCommand must be created via NewStartDeliveryToCustomerCommand constructor",
)

// StartDeliveryToCustomerCommand marks the assigned driver as carrying the
// order to the customer.
type StartDeliveryToCustomerCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryToCustomerCommand creates a command for the drop-off leg.
func NewStartDeliveryToCustomerCommand(orderID kernel.UUID, driverID kernel.UUID) (StartDeliveryToCustomerCommand, error) {
	cmd := StartDeliveryToCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return StartDeliveryToCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryToCustomerCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryToCustomerCommandIsNotConstructed)
}

// OrderID returns the order in delivery.
func (c StartDeliveryToCustomerCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver reporting the leg.
func (c StartDeliveryToCustomerCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartDeliveryToCustomerCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartDeliveryToCustomerCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
