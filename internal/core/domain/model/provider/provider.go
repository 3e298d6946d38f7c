package provider

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const nameMaxLength = 100

// ErrProviderIsNotConstructed is returned when a Provider instance was not created through
// the NewProvider or RestoreProvider constructors. This ensures all providers are properly validated.
var ErrProviderIsNotConstructed = errors.New("Provider must be created via NewProvider or RestoreProvider constructor")

// Provider represents a merchant that prepares orders. A provider belongs to
// exactly one sector and only receives dispatch notifications for orders
// placed there. The availability flag is the provider's own on-duty switch;
// the blocked flag is an operator-side sanction that overrides it.
type Provider struct {
	id          kernel.UUID
	name        string
	sectorID    kernel.UUID
	isAvailable bool
	isBlocked   bool
	deviceToken string

	guard guard.ConstructorGuard
}

// NewProvider creates a new available, unblocked Provider in the given sector.
func NewProvider(id kernel.UUID, name string, sectorID kernel.UUID) (*Provider, error) {
	provider := &Provider{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		provider.setID(id),
		provider.setName(name),
		provider.setSectorID(sectorID),
	); err != nil {
		return nil, err
	}

	return provider, nil
}

// RestoreProvider reconstructs a Provider aggregate from persistent storage.
func RestoreProvider(id kernel.UUID, name string, sectorID kernel.UUID, isAvailable bool, isBlocked bool, deviceToken string) (*Provider, error) {
	provider := &Provider{
		isAvailable: isAvailable,
		isBlocked:   isBlocked,
		deviceToken: deviceToken,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		provider.setID(id),
		provider.setName(name),
		provider.setSectorID(sectorID),
	); err != nil {
		return nil, err
	}

	return provider, nil
}

// Validate ensures the Provider instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (p *Provider) Validate() error {
	if p == nil {
		return ErrProviderIsNotConstructed
	}
	return p.guard.Validate(ErrProviderIsNotConstructed)
}

// IsEqual compares two providers by their unique identifiers.
func (p *Provider) IsEqual(other *Provider) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the provider's unique identifier.
func (p *Provider) ID() kernel.UUID {
	return p.id
}

// Name returns the provider's display name.
func (p *Provider) Name() string {
	return p.name
}

// SectorID returns the sector the provider operates in.
func (p *Provider) SectorID() kernel.UUID {
	return p.sectorID
}

// IsAvailable reports the provider's own on-duty switch.
func (p *Provider) IsAvailable() bool {
	return p.isAvailable
}

// IsBlocked reports whether an operator has suspended the provider.
func (p *Provider) IsBlocked() bool {
	return p.isBlocked
}

// DeviceToken returns the push notification token of the provider's device.
func (p *Provider) DeviceToken() string {
	return p.deviceToken
}

// CanAcceptInSector reports whether the provider may claim an order placed in
// the given sector. Blocked or off-duty providers can claim nothing.
func (p *Provider) CanAcceptInSector(sectorID kernel.UUID) bool {
	return !p.isBlocked && p.isAvailable && p.sectorID.IsEqual(sectorID)
}

// SetAvailability flips the provider's on-duty switch. A blocked provider
// cannot put itself back on duty.
func (p *Provider) SetAvailability(available bool) error {
	if available && p.isBlocked {
		return errs.NewConflictErrorWithCause("provider availability",
			errors.New("provider is blocked"))
	}
	p.isAvailable = available
	return nil
}

// Block suspends the provider and takes it off duty.
func (p *Provider) Block() {
	p.isBlocked = true
	p.isAvailable = false
}

// Unblock lifts the suspension. The provider stays off duty until it flips
// its own availability switch.
func (p *Provider) Unblock() {
	p.isBlocked = false
}

// UpdateDeviceToken replaces the push notification token.
func (p *Provider) UpdateDeviceToken(token string) {
	p.deviceToken = token
}

func (p *Provider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Provider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, nameMaxLength)
	}
	p.name = name
	return nil
}

func (p *Provider) setSectorID(sectorID kernel.UUID) error {
	if err := sectorID.Validate(); err != nil {
		return err
	}
	p.sectorID = sectorID
	return nil
}
