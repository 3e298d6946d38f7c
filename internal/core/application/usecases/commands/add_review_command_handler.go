package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

// AddReviewCommandHandler records a customer's one-time review of a completed
// order. Ownership, completion, and the once-only rule are enforced by the
// order aggregate; the write itself is conditioned on the stored row still
// being unrated, so concurrent review requests cannot both land.
type AddReviewCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddReviewCommandHandler creates a handler for order reviews.
func NewAddReviewCommandHandler(uowFactory OrderUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review.
func (h AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = reviewedOrder.AddReview(cmd.CustomerID(), cmd.Rating(), cmd.Review()); err != nil {
		return err
	}

	won, err := uow.OrderRepository().UpdateIfUnrated(ctx, reviewedOrder)
	if err != nil {
		return err
	}

	if !won {
		return errs.NewConflictErrorWithCause("order review",
			errors.New("order has already been reviewed"))
	}

	return uow.Commit(ctx)
}
