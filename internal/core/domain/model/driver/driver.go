package driver

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const nameMaxLength = 100

// ErrDriverIsNotConstructed is returned when a Driver instance was not created through
// the NewDriver or RestoreDriver constructors. This ensures all drivers are properly validated.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

// Driver represents a courier that carries orders. A driver works in exactly
// one sector and only receives dispatch notifications for orders placed
// there. As with providers, availability is the driver's own on-duty switch
// and the blocked flag is an operator-side sanction. The one-active-order
// rule is enforced at claim time by the storage layer, not here.
type Driver struct {
	id          kernel.UUID
	name        string
	sectorID    kernel.UUID
	isAvailable bool
	isBlocked   bool
	deviceToken string

	guard guard.ConstructorGuard
}

// NewDriver creates a new available, unblocked Driver in the given sector.
func NewDriver(id kernel.UUID, name string, sectorID kernel.UUID) (*Driver, error) {
	driver := &Driver{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setSectorID(sectorID),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
func RestoreDriver(id kernel.UUID, name string, sectorID kernel.UUID, isAvailable bool, isBlocked bool, deviceToken string) (*Driver, error) {
	driver := &Driver{
		isAvailable: isAvailable,
		isBlocked:   isBlocked,
		deviceToken: deviceToken,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setSectorID(sectorID),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate ensures the Driver instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// SectorID returns the sector the driver works in.
func (d *Driver) SectorID() kernel.UUID {
	return d.sectorID
}

// IsAvailable reports the driver's own on-duty switch.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// IsBlocked reports whether an operator has suspended the driver.
func (d *Driver) IsBlocked() bool {
	return d.isBlocked
}

// DeviceToken returns the push notification token of the driver's device.
func (d *Driver) DeviceToken() string {
	return d.deviceToken
}

// CanAcceptInSector reports whether the driver may claim an order placed in
// the given sector. Blocked or off-duty drivers can claim nothing.
func (d *Driver) CanAcceptInSector(sectorID kernel.UUID) bool {
	return !d.isBlocked && d.isAvailable && d.sectorID.IsEqual(sectorID)
}

// SetAvailability flips the driver's on-duty switch. A blocked driver cannot
// put itself back on duty.
func (d *Driver) SetAvailability(available bool) error {
	if available && d.isBlocked {
		return errs.NewConflictErrorWithCause("driver availability",
			errors.New("driver is blocked"))
	}
	d.isAvailable = available
	return nil
}

// Block suspends the driver and takes it off duty.
func (d *Driver) Block() {
	d.isBlocked = true
	d.isAvailable = false
}

// Unblock lifts the suspension. The driver stays off duty until it flips its
// own availability switch.
func (d *Driver) Unblock() {
	d.isBlocked = false
}

// UpdateDeviceToken replaces the push notification token.
func (d *Driver) UpdateDeviceToken(token string) {
	d.deviceToken = token
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, nameMaxLength)
	}
	d.name = name
	return nil
}

func (d *Driver) setSectorID(sectorID kernel.UUID) error {
	if err := sectorID.Validate(); err != nil {
		return err
	}
	d.sectorID = sectorID
	return nil
}
