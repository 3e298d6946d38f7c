// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/ports"
)

// Sentinel errors shared by the claim and cancellation handlers.
// They let the transport layer distinguish a lost race from a hard failure.
var (
	// ErrOrderNotAvailable is returned when a conditional update finds the
	// order already moved by a concurrent writer. The claim or cancellation
	// simply lost the race; nothing was modified.
	ErrOrderNotAvailable = errors.New("order is no longer available")

	// ErrActorBlocked is returned when a blocked provider or driver attempts
	// an operation that requires good standing.
	ErrActorBlocked = errors.New("actor is blocked")

	// ErrActorNotEligible is returned when a provider or driver fails the
	// eligibility checks for an order: wrong sector, off duty, or missing
	// stock for the ordered products.
	ErrActorNotEligible = errors.New("actor is not eligible for this order")
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SectorRepoFactory provides access to the sector repository within a transaction.
	SectorRepoFactory interface {
		SectorRepository() ports.SectorRepository
	}

	// ProviderRepoFactory provides access to the provider repository within a transaction.
	ProviderRepoFactory interface {
		ProviderRepository() ports.ProviderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// AddressLookupFactory provides access to the address lookup within a transaction.
	AddressLookupFactory interface {
		AddressLookup() ports.AddressLookup
	}

	// ProductCatalogFactory provides access to the product catalog within a transaction.
	ProductCatalogFactory interface {
		ProductCatalog() ports.ProductCatalog
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the delivery-leg, cancellation, rejection, and review handlers.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages the order placement transaction: address
	// resolution, sector lookup, price snapshotting, persistence, and the
	// provider pool read for the post-commit fan-out.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		SectorRepoFactory
		ProviderRepoFactory
		AddressLookupFactory
		ProductCatalogFactory
	}

	// CreateOrderUoWFactory creates new order placement unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ProviderClaimUoW manages the provider claim transaction, including the
	// stock check and the driver pool read for the post-commit fan-out.
	ProviderClaimUoW interface {
		TxManager
		OrderRepoFactory
		ProviderRepoFactory
		DriverRepoFactory
		ProductCatalogFactory
	}

	// ProviderClaimUoWFactory creates new provider claim unit of work instances.
	ProviderClaimUoWFactory interface {
		Create() ProviderClaimUoW
	}

	// DriverClaimUoW manages the driver claim transaction.
	DriverClaimUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// DriverClaimUoWFactory creates new driver claim unit of work instances.
	DriverClaimUoWFactory interface {
		Create() DriverClaimUoW
	}

	// RenotifyUoW manages the stale-order sweep: reading overdue orders and
	// the provider pools they need to be re-broadcast to.
	RenotifyUoW interface {
		TxManager
		OrderRepoFactory
		ProviderRepoFactory
	}

	// RenotifyUoWFactory creates new renotify unit of work instances.
	RenotifyUoWFactory interface {
		Create() RenotifyUoW
	}

	// SectorUoW manages transactions for sector administration.
	SectorUoW interface {
		TxManager
		SectorRepoFactory
	}

	// SectorUoWFactory creates new sector unit of work instances.
	SectorUoWFactory interface {
		Create() SectorUoW
	}

	// ProviderUoW manages transactions for provider-only operations.
	ProviderUoW interface {
		TxManager
		ProviderRepoFactory
	}

	// ProviderUoWFactory creates new provider unit of work instances.
	ProviderUoWFactory interface {
		Create() ProviderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}
)
