// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - SectorResolver: A domain service mapping delivery points to serving sectors
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
