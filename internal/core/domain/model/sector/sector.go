package sector

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const nameMaxLength = 100

// ErrSectorIsNotConstructed is returned when a Sector instance was not created through
// the NewSector or RestoreSector constructors. This ensures all sectors are properly validated.
var ErrSectorIsNotConstructed = errors.New("Sector must be created via NewSector or RestoreSector constructor")

// Sector represents a geographic delivery zone. Each sector carries the polygon
// describing its boundary and the flat delivery fee applied to orders placed
// inside it. Inactive sectors are excluded from address resolution.
//
// Sector follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - The boundary polygon must be a constructed kernel.Polygon
//   - The delivery fee is never negative
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Sector struct {
	id          kernel.UUID
	name        string
	boundary    kernel.Polygon
	deliveryFee float64
	isActive    bool

	guard guard.ConstructorGuard
}

// NewSector creates a new active Sector with the given boundary and fee.
func NewSector(id kernel.UUID, name string, boundary kernel.Polygon, deliveryFee float64) (*Sector, error) {
	sector := &Sector{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sector.setID(id),
		sector.setName(name),
		sector.setBoundary(boundary),
		sector.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return sector, nil
}

// RestoreSector reconstructs a Sector aggregate from persistent storage,
// including its activation flag.
func RestoreSector(id kernel.UUID, name string, boundary kernel.Polygon, deliveryFee float64, isActive bool) (*Sector, error) {
	sector := &Sector{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sector.setID(id),
		sector.setName(name),
		sector.setBoundary(boundary),
		sector.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return sector, nil
}

// Validate ensures the Sector instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (s *Sector) Validate() error {
	if s == nil {
		return ErrSectorIsNotConstructed
	}
	return s.guard.Validate(ErrSectorIsNotConstructed)
}

// IsEqual compares two sectors by their unique identifiers.
func (s *Sector) IsEqual(other *Sector) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the sector's unique identifier.
func (s *Sector) ID() kernel.UUID {
	return s.id
}

// Name returns the sector's display name.
func (s *Sector) Name() string {
	return s.name
}

// Boundary returns the polygon describing the sector's border.
func (s *Sector) Boundary() kernel.Polygon {
	return s.boundary
}

// DeliveryFee returns the flat fee charged for deliveries inside the sector.
func (s *Sector) DeliveryFee() float64 {
	return s.deliveryFee
}

// IsActive reports whether the sector participates in address resolution.
func (s *Sector) IsActive() bool {
	return s.isActive
}

// Contains reports whether the given point lies inside the sector's boundary.
// Points exactly on the boundary follow the underlying ray casting rule.
func (s *Sector) Contains(point kernel.Point) (bool, error) {
	return s.boundary.Contains(point)
}

// Activate makes the sector eligible for address resolution.
func (s *Sector) Activate() {
	s.isActive = true
}

// Deactivate removes the sector from address resolution. Existing orders keep
// their sector assignment.
func (s *Sector) Deactivate() {
	s.isActive = false
}

func (s *Sector) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sector) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, nameMaxLength)
	}
	s.name = name
	return nil
}

func (s *Sector) setBoundary(boundary kernel.Polygon) error {
	if err := boundary.Validate(); err != nil {
		return err
	}
	s.boundary = boundary
	return nil
}

func (s *Sector) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid",
			fmt.Errorf("%f is negative", fee))
	}
	s.deliveryFee = fee
	return nil
}
