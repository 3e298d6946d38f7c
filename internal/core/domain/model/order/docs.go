// Package order provides domain entities and business logic for order management
// in the dispatch system. It implements the Order aggregate root with lifecycle
// management and role-gated state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, parties, commercial terms, and lifecycle
//   - Status: A state machine that enforces valid transitions through the claim and delivery stages
//   - Item: A line item value object with the unit price snapshotted at creation time
//   - PaymentStatus: The settlement flag flipped when the delivery completes
//
// Key business rules:
//   - Orders are created in pending_provider with the sector and delivery fee fixed forever
//   - A provider claim moves the order to pending_driver; a driver claim to accepted
//   - Only the assigned driver advances the delivery legs and completes the order
//   - Only the owning customer may cancel (pre-claim stages only) or review (completed, once)
//   - Guard failures leave the aggregate unchanged
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
