package http

import (
	"errors"
	"net/http"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"blocked actor", commands.ErrActorBlocked, http.StatusForbidden},
		{"lost claim", commands.ErrOrderNotAvailable, http.StatusConflict},
		{"ineligible actor", commands.ErrActorNotEligible, http.StatusConflict},
		{"outside service area", services.ErrSectorNotFound, http.StatusNotFound},
		{"missing object", errs.NewObjectNotFoundError("order", "abc"), http.StatusNotFound},
		{"guard failure", errs.NewConflictError("order status"), http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("rating"), http.StatusUnprocessableEntity},
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusUnprocessableEntity},
		{"out of range", errs.NewValueIsOutOfRangeError("rating", 6, 1, 5), http.StatusUnprocessableEntity},
		{"empty order", commands.ErrOrderLinesAreRequired, http.StatusUnprocessableEntity},
		{"bad quantity", commands.ErrLineQuantityIsInvalid, http.StatusUnprocessableEntity},
		{"missing payment method", commands.ErrPaymentMethodIsEmpty, http.StatusUnprocessableEntity},
		{"bad rating", commands.ErrRatingIsInvalid, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusCode(tt.err))
		})
	}
}

func TestStatusCode_WrappedErrors(t *testing.T) {
	wrapped := errs.NewObjectNotFoundErrorWithCause("order", "abc", errors.New("no rows"))
	assert.Equal(t, http.StatusNotFound, statusCode(wrapped))
}
