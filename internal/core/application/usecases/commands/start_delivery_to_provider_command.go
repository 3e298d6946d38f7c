package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartDeliveryToProviderCommandIsNotConstructed = errors.New(
	"StartDeliveryToProviderCommand must be created via NewStartDeliveryToProviderCommand constructor",
)

// StartDeliveryToProviderCommand marks the assigned driver as heading to the
// provider for pickup.
type StartDeliveryToProviderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryToProviderCommand creates a command for the pickup leg.
func NewStartDeliveryToProviderCommand(orderID kernel.UUID, driverID kernel.UUID) (StartDeliveryToProviderCommand, error) {
	cmd := StartDeliveryToProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return StartDeliveryToProviderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryToProviderCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryToProviderCommandIsNotConstructed)
}

// OrderID returns the order in delivery.
func (c StartDeliveryToProviderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver reporting the leg.
func (c StartDeliveryToProviderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartDeliveryToProviderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartDeliveryToProviderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
