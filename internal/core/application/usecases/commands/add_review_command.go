package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAddReviewCommandIsNotConstructed = errors.New(
		"AddReviewCommand must be created via NewAddReviewCommand constructor",
	)
	ErrRatingIsInvalid = errors.New("rating must be between 1 and 5")
)

// AddReviewCommand represents the owning customer rating a completed order.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int
	review     string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command for a one-time order review.
func NewAddReviewCommand(orderID kernel.UUID, customerID kernel.UUID, rating int, review string) (AddReviewCommand, error) {
	cmd := AddReviewCommand{
		review: review,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return AddReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// OrderID returns the reviewed order.
func (c AddReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the reviewing customer.
func (c AddReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the star rating.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// Review returns the free-text review.
func (c AddReviewCommand) Review() string {
	return c.review
}

func (c *AddReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddReviewCommand) setRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingIsInvalid
	}

	c.rating = rating
	return nil
}
