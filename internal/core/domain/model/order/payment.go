package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PaymentStatus tracks whether the order has been settled.
// Settlement mechanics live outside this system; completion of the delivery
// flips the flag to paid.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates the order has not been paid yet.
	PaymentPending

	// PaymentPaid indicates the order was settled on completion.
	PaymentPaid
)

// PaymentStatusFromString parses the persisted string form of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch s {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%q is not a valid payment status", s))
	}
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the persisted name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "pending"
	case PaymentPaid:
		return "paid"
	default:
		return "unknown"
	}
}
