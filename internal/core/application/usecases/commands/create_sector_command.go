package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateSectorCommandIsNotConstructed = errors.New(
		"CreateSectorCommand must be created via NewCreateSectorCommand constructor",
	)
	ErrSectorNameIsRequired  = errors.New("sector name is required")
	ErrDeliveryFeeIsNegative = errors.New("delivery fee must not be negative")
)

// CreateSectorCommand represents an operator registering a new delivery zone.
type CreateSectorCommand struct { //nolint:recvcheck //using for validation
	sectorID    kernel.UUID
	name        string
	boundary    kernel.Polygon
	deliveryFee float64

	guard guard.ConstructorGuard
}

// NewCreateSectorCommand creates a command to register a delivery zone.
// The boundary must be a constructed polygon; vertex-level validation happens
// in kernel.NewPolygon at the transport layer.
func NewCreateSectorCommand(sectorID kernel.UUID, name string, boundary kernel.Polygon, deliveryFee float64) (CreateSectorCommand, error) {
	cmd := CreateSectorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSectorID(sectorID),
		cmd.setName(name),
		cmd.setBoundary(boundary),
		cmd.setDeliveryFee(deliveryFee),
	); err != nil {
		return CreateSectorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSectorCommand) Validate() error {
	return c.guard.Validate(ErrCreateSectorCommandIsNotConstructed)
}

// SectorID returns the new sector's identifier.
func (c CreateSectorCommand) SectorID() kernel.UUID {
	return c.sectorID
}

// Name returns the sector's display name.
func (c CreateSectorCommand) Name() string {
	return c.name
}

// Boundary returns the sector's polygon.
func (c CreateSectorCommand) Boundary() kernel.Polygon {
	return c.boundary
}

// DeliveryFee returns the sector's flat delivery fee.
func (c CreateSectorCommand) DeliveryFee() float64 {
	return c.deliveryFee
}

func (c *CreateSectorCommand) setSectorID(sectorID kernel.UUID) error {
	if err := sectorID.Validate(); err != nil {
		return err
	}

	c.sectorID = sectorID
	return nil
}

func (c *CreateSectorCommand) setName(name string) error {
	if name == "" {
		return ErrSectorNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateSectorCommand) setBoundary(boundary kernel.Polygon) error {
	if err := boundary.Validate(); err != nil {
		return err
	}

	c.boundary = boundary
	return nil
}

func (c *CreateSectorCommand) setDeliveryFee(deliveryFee float64) error {
	if deliveryFee < 0 {
		return ErrDeliveryFeeIsNegative
	}

	c.deliveryFee = deliveryFee
	return nil
}
