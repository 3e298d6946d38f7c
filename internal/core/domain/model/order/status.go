package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the marketplace workflow: a provider claims the order first, then a driver,
// then the driver walks it through both delivery legs.
//
// State transitions:
//
//	PendingProvider ──> PendingDriver ──> Accepted ──> OnTheWayProvider ──> OnTheWayCustomer ──> Completed
//	       │                  │
//	       └──────────────────┴──> Cancelled (customer, pre-claim only)
//
// Rejected and Cancelled are terminal side exits; Completed is terminal except
// for the one-time review addition handled by the Order aggregate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingProvider is the initial status: the order waits for a provider
	// in its sector to claim it.
	PendingProvider

	// PendingDriver indicates a provider has claimed the order and it waits
	// for a driver in its sector to claim the delivery.
	PendingDriver

	// Accepted indicates a driver has claimed the delivery.
	Accepted

	// OnTheWayProvider indicates the driver is heading to the provider.
	OnTheWayProvider

	// OnTheWayCustomer indicates the driver picked up the order and is
	// heading to the customer.
	OnTheWayCustomer

	// Completed indicates the order has been delivered. Terminal, except for
	// the one-time review addition.
	Completed

	// Rejected is a terminal side exit.
	Rejected

	// Cancelled indicates the customer cancelled the order before any claim
	// locked it in. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		PendingProvider:  "pending_provider",
		PendingDriver:    "pending_driver",
		Accepted:         "accepted",
		OnTheWayProvider: "on_the_way_provider",
		OnTheWayCustomer: "on_the_way_customer",
		Completed:        "completed",
		Rejected:         "rejected",
		Cancelled:        "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingProvider:  "pending_provider",
		PendingDriver:    "pending_driver",
		Accepted:         "accepted",
		OnTheWayProvider: "on_the_way_provider",
		OnTheWayCustomer: "on_the_way_customer",
		Completed:        "completed",
		Rejected:         "rejected",
		Cancelled:        "cancelled",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for unknown values, including the empty string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined workflow states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted snake_case name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are permitted from this
// status (review addition on Completed is handled separately by the aggregate).
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected || s == Cancelled
}

// IsInProgress reports whether the order occupies a driver: a driver holding
// an order in any of these statuses may not claim another one.
func (s Status) IsInProgress() bool {
	return s == Accepted || s == OnTheWayProvider || s == OnTheWayCustomer
}

// IsCancellable reports whether the owning customer may still cancel.
// Only the pre-claim stages qualify.
func (s Status) IsCancellable() bool {
	return s == PendingProvider || s == PendingDriver
}

// AcceptByProvider transitions PendingProvider -> PendingDriver.
func (s Status) AcceptByProvider() (Status, error) {
	if s != PendingProvider {
		return Unknown, s.transitionConflict("accept by provider")
	}
	return PendingDriver, nil
}

// RejectByProvider keeps the order in PendingProvider so it re-enters the
// provider pool. Valid only while the order is still unclaimed by a provider.
func (s Status) RejectByProvider() (Status, error) {
	if s != PendingProvider {
		return Unknown, s.transitionConflict("reject by provider")
	}
	return PendingProvider, nil
}

// AcceptByDriver transitions PendingDriver -> Accepted.
func (s Status) AcceptByDriver() (Status, error) {
	if s != PendingDriver {
		return Unknown, s.transitionConflict("accept by driver")
	}
	return Accepted, nil
}

// RejectByDriver keeps the order in PendingDriver so it re-enters the driver
// pool. Valid only while the order still waits for a driver.
func (s Status) RejectByDriver() (Status, error) {
	if s != PendingDriver {
		return Unknown, s.transitionConflict("reject by driver")
	}
	return PendingDriver, nil
}

// StartToProvider transitions Accepted -> OnTheWayProvider.
func (s Status) StartToProvider() (Status, error) {
	if s != Accepted {
		return Unknown, s.transitionConflict("start delivery to provider")
	}
	return OnTheWayProvider, nil
}

// StartToCustomer transitions OnTheWayProvider -> OnTheWayCustomer.
func (s Status) StartToCustomer() (Status, error) {
	if s != OnTheWayProvider {
		return Unknown, s.transitionConflict("start delivery to customer")
	}
	return OnTheWayCustomer, nil
}

// Complete transitions OnTheWayCustomer -> Completed.
func (s Status) Complete() (Status, error) {
	if s != OnTheWayCustomer {
		return Unknown, s.transitionConflict("complete")
	}
	return Completed, nil
}

// Cancel transitions a pre-claim status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsCancellable() {
		return Unknown, s.transitionConflict("cancel")
	}
	return Cancelled, nil
}

func (s Status) transitionConflict(event string) error {
	return errs.NewConflictErrorWithCause(
		"order status",
		fmt.Errorf("%s is not a valid status to %s", s.String(), event),
	)
}
