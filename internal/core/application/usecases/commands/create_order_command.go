package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order lines are required")
	ErrLineQuantityIsInvalid = errors.New("line quantity must be greater than 0")
	ErrPaymentMethodIsEmpty  = errors.New("payment method is required")
)

// OrderLine is a single requested product with its quantity. Prices are not
// part of the request; the handler snapshots them from the catalog.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order. The delivery
// address is referenced by identifier; the handler resolves it to coordinates
// and from there to the serving sector.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, addressID,
//	    []OrderLine{{ProductID: productID, Quantity: 2}},
//	    "cash", true, nil, "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	addressID     kernel.UUID
	lines         []OrderLine
	paymentMethod string
	immediate     bool
	deliveryDate  *time.Time
	deliveryTime  string
	note          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one line with a positive quantity,
// and requires a payment method. Schedule consistency is validated by the
// order aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	addressID kernel.UUID,
	lines []OrderLine,
	paymentMethod string,
	immediate bool,
	deliveryDate *time.Time,
	deliveryTime string,
	note string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		immediate:    immediate,
		deliveryDate: deliveryDate,
		deliveryTime: deliveryTime,
		note:         note,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setAddressID(addressID),
		orderCommand.setLines(lines),
		orderCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the placing customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the delivery address identifier.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Lines returns a copy of the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Immediate reports whether the order is for immediate delivery.
func (c CreateOrderCommand) Immediate() bool {
	return c.immediate
}

// DeliveryDate returns the requested delivery date for scheduled orders.
func (c CreateOrderCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// DeliveryTime returns the requested HH:MM delivery time for scheduled orders.
func (c CreateOrderCommand) DeliveryTime() string {
	return c.deliveryTime
}

// Note returns the customer's free-text note.
func (c CreateOrderCommand) Note() string {
	return c.note
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrLineQuantityIsInvalid
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return ErrPaymentMethodIsEmpty
	}

	c.paymentMethod = paymentMethod
	return nil
}
