// Package auth provides JWT-backed credentials for the HTTP surface.
//
// Each actor kind gets its own credential type. Handlers ask for the
// specific type they serve, so a driver token can never reach a customer
// endpoint by way of a role string comparison going stale.
package auth

import (
	"dispatch/internal/core/domain/model/kernel"
)

// Role names carried in the token's role claim.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleDriver   = "driver"
)

// CustomerCredential identifies an authenticated customer.
type CustomerCredential struct {
	id kernel.UUID
}

// CustomerID returns the authenticated customer's identifier.
func (c CustomerCredential) CustomerID() kernel.UUID {
	return c.id
}

// ProviderCredential identifies an authenticated provider.
type ProviderCredential struct {
	id kernel.UUID
}

// ProviderID returns the authenticated provider's identifier.
func (c ProviderCredential) ProviderID() kernel.UUID {
	return c.id
}

// DriverCredential identifies an authenticated driver.
type DriverCredential struct {
	id kernel.UUID
}

// DriverID returns the authenticated driver's identifier.
func (c DriverCredential) DriverID() kernel.UUID {
	return c.id
}
