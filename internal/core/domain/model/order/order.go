package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	noteMaxLength   = 500
	reviewMaxLength = 1000
	ratingMin       = 1
	ratingMax       = 5

	deliveryTimeLayout = "15:04"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder constructors. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a marketplace order. It is the aggregate root that manages
// the order lifecycle from creation through the provider and driver claims to
// completion, cancellation, and the one-time post-delivery review.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer, and sector
//   - Must have at least one line item; the total is the sum of line subtotals
//   - Sector and delivery fee are fixed at creation and never migrate
//   - At most one provider and one driver own the order at any time
//   - Status transitions follow the workflow defined by Status
//   - Guard failures leave the aggregate unchanged (no partial effects)
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID

	// providerID is the claiming provider (nil until a provider accepts)
	providerID *kernel.UUID

	// driverID is the claiming driver (nil until a driver accepts)
	driverID *kernel.UUID

	// sectorID is resolved once from the delivery address at creation
	sectorID kernel.UUID

	items       []Item
	totalAmount float64
	deliveryFee float64

	paymentMethod string
	paymentStatus PaymentStatus

	immediate    bool
	deliveryDate *time.Time
	deliveryTime string

	note      string
	orderDate time.Time

	rating *int
	review string

	status Status

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in PendingProvider status with snapshotted
// commercial terms. This is the only way to create a fresh order, ensuring
// all business invariants hold from the start.
//
// The total amount is computed from the line items' snapshotted prices; the
// delivery fee is the resolved sector's fee at creation time. For scheduled
// (non-immediate) orders the delivery date must be on orderDate's day or
// later and the delivery time must be a valid HH:MM value; immediate orders
// must carry neither.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	sectorID kernel.UUID,
	items []Item,
	deliveryFee float64,
	paymentMethod string,
	immediate bool,
	deliveryDate *time.Time,
	deliveryTime string,
	note string,
	orderDate time.Time,
) (*Order, error) {
	order := &Order{
		status:        PendingProvider,
		paymentStatus: PaymentPending,
		orderDate:     orderDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setSectorID(sectorID),
		order.setItems(items),
		order.setDeliveryFee(deliveryFee),
		order.setPaymentMethod(paymentMethod),
		order.setSchedule(immediate, deliveryDate, deliveryTime, orderDate),
		order.setNote(note),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it restores the order to its previously persisted state,
// including claims, payment status, schedule, and review, without re-running
// creation-time rules such as the today-or-later schedule check.
//
// The restored order behaves identically to one advanced through normal
// domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	providerID *kernel.UUID,
	driverID *kernel.UUID,
	sectorID kernel.UUID,
	items []Item,
	deliveryFee float64,
	paymentMethod string,
	paymentStatus PaymentStatus,
	immediate bool,
	deliveryDate *time.Time,
	deliveryTime string,
	note string,
	orderDate time.Time,
	rating *int,
	review string,
	status Status,
) (*Order, error) {
	order := &Order{
		providerID:   providerID,
		driverID:     driverID,
		immediate:    immediate,
		deliveryDate: deliveryDate,
		deliveryTime: deliveryTime,
		orderDate:    orderDate,
		review:       review,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setSectorID(sectorID),
		order.setItems(items),
		order.setDeliveryFee(deliveryFee),
		order.setPaymentMethod(paymentMethod),
		order.setNote(note),
		order.setPaymentStatus(paymentStatus),
		order.setStatus(status),
		order.setRating(rating),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Provider returns the claiming provider's ID, or nil if unclaimed.
func (o *Order) Provider() *kernel.UUID {
	return o.providerID
}

// Driver returns the claiming driver's ID, or nil if unclaimed.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// SectorID returns the sector resolved from the delivery address at creation.
// An order never migrates sectors.
func (o *Order) SectorID() kernel.UUID {
	return o.sectorID
}

// Items returns a copy of the order's line items in their original order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of the line item subtotals.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// DeliveryFee returns the sector's fee snapshotted at creation time.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// PaymentMethod returns the customer's chosen payment method.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// PaymentStatus returns the order's settlement state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Immediate reports whether the order is for immediate delivery.
func (o *Order) Immediate() bool {
	return o.immediate
}

// DeliveryDate returns the scheduled delivery date, or nil for immediate orders.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// DeliveryTime returns the scheduled HH:MM delivery time, empty for immediate orders.
func (o *Order) DeliveryTime() string {
	return o.deliveryTime
}

// Note returns the customer's free-text note.
func (o *Order) Note() string {
	return o.note
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Rating returns the post-delivery rating, or nil if not reviewed yet.
func (o *Order) Rating() *int {
	return o.rating
}

// Review returns the post-delivery review text.
func (o *Order) Review() string {
	return o.review
}

// Status returns the current workflow status.
func (o *Order) Status() Status {
	return o.status
}

// AcceptByProvider records a provider's claim, moving the order from
// PendingProvider to PendingDriver. The caller is responsible for verifying
// the provider's eligibility (sector, availability, stock); this method
// enforces only the order-side rules.
func (o *Order) AcceptByProvider(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptByProvider()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.providerID = &providerID
	return nil
}

// RejectByProvider returns the order to the provider pool.
// Valid only while the order is still in PendingProvider.
func (o *Order) RejectByProvider() error {
	newStatus, err := o.status.RejectByProvider()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.providerID = nil
	return nil
}

// AcceptByDriver records a driver's claim, moving the order from
// PendingDriver to Accepted. The caller is responsible for verifying the
// driver's eligibility (sector, not blocked, no other active order).
func (o *Order) AcceptByDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AcceptByDriver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// RejectByDriver returns the order to the driver pool.
// Valid only while the order is still in PendingDriver.
func (o *Order) RejectByDriver() error {
	newStatus, err := o.status.RejectByDriver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	return nil
}

// StartToProvider marks the assigned driver as heading to the provider.
// Only the assigned driver may advance the delivery legs.
func (o *Order) StartToProvider(driverID kernel.UUID) error {
	if err := o.validateAssignedDriver(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.StartToProvider()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartToCustomer marks the assigned driver as heading to the customer.
func (o *Order) StartToCustomer(driverID kernel.UUID) error {
	if err := o.validateAssignedDriver(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.StartToCustomer()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered and flips the payment status to paid.
// Only the assigned driver may complete the order.
func (o *Order) Complete(driverID kernel.UUID) error {
	if err := o.validateAssignedDriver(driverID); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentPaid
	return nil
}

// Cancel lets the owning customer cancel the order while it is still in a
// pre-claim stage (PendingProvider or PendingDriver).
func (o *Order) Cancel(customerID kernel.UUID) error {
	if err := o.validateOwner(customerID); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AddReview records the owning customer's one-time rating and review.
// Valid only on a completed order that has not been reviewed yet;
// the rating must be between 1 and 5.
func (o *Order) AddReview(customerID kernel.UUID, rating int, review string) error {
	if err := o.validateOwner(customerID); err != nil {
		return err
	}

	if o.status != Completed {
		return errs.NewConflictErrorWithCause("order status",
			fmt.Errorf("%s is not a valid status to review", o.status.String()))
	}

	if o.rating != nil {
		return errs.NewConflictErrorWithCause("order review",
			errors.New("order has already been reviewed"))
	}

	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}

	if len(review) > reviewMaxLength {
		return errs.NewValueIsOutOfRangeError("review length", len(review), 0, reviewMaxLength)
	}

	o.rating = &rating
	o.review = review
	return nil
}

func (o *Order) validateOwner(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	if !o.customerID.IsEqual(customerID) {
		return errs.NewConflictErrorWithCause("order owner",
			errors.New("order belongs to another customer"))
	}
	return nil
}

func (o *Order) validateAssignedDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewConflictErrorWithCause("assigned driver",
			errors.New("order is not assigned to this driver"))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setSectorID(sectorID kernel.UUID) error {
	if err := sectorID.Validate(); err != nil {
		return err
	}
	o.sectorID = sectorID
	return nil
}

// setItems validates the lines, stores a copy, and derives the total amount.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

func (o *Order) setDeliveryFee(fee float64) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid",
			fmt.Errorf("%f is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setNote(note string) error {
	if len(note) > noteMaxLength {
		return errs.NewValueIsOutOfRangeError("note length", len(note), 0, noteMaxLength)
	}
	o.note = note
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setRating(rating *int) error {
	if rating != nil && (*rating < ratingMin || *rating > ratingMax) {
		return errs.NewValueIsOutOfRangeError("rating", *rating, ratingMin, ratingMax)
	}
	o.rating = rating
	return nil
}

// setSchedule validates the scheduling fields against the order date.
// Immediate orders carry no schedule; scheduled orders require a date on the
// order day or later and a valid HH:MM time.
func (o *Order) setSchedule(immediate bool, deliveryDate *time.Time, deliveryTime string, orderDate time.Time) error {
	if immediate {
		o.immediate = true
		o.deliveryDate = nil
		o.deliveryTime = ""
		return nil
	}

	if deliveryDate == nil {
		return errs.NewValueIsRequiredError("delivery date")
	}

	startOfDay := time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, orderDate.Location())
	if deliveryDate.Before(startOfDay) {
		return errs.NewValueIsInvalidErrorWithCause("delivery date is invalid",
			fmt.Errorf("%s is before the order day", deliveryDate.Format(time.DateOnly)))
	}

	if deliveryTime == "" {
		return errs.NewValueIsRequiredError("delivery time")
	}

	if _, err := time.Parse(deliveryTimeLayout, deliveryTime); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery time is invalid", err)
	}

	o.immediate = false
	date := *deliveryDate
	o.deliveryDate = &date
	o.deliveryTime = deliveryTime
	return nil
}
