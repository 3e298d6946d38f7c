package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps application errors to HTTP status codes:
//
//   - missing objects and addresses outside the service area → 404
//   - malformed or out-of-range input → 422
//   - blocked actors → 403
//   - lost claims and other guard failures → 409
//
// Anything unrecognized is a 500 with a generic message; the cause is left
// to the echo error logger.
func respondError(c echo.Context, err error) error {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return c.JSON(code, errorResponse{Code: code, Message: message})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, commands.ErrActorBlocked):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrOrderNotAvailable),
		errors.Is(err, commands.ErrActorNotEligible):
		return http.StatusConflict
	case errors.Is(err, services.ErrSectorNotFound):
		return http.StatusNotFound
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange) {
		return http.StatusUnprocessableEntity
	}

	switch {
	case errors.Is(err, commands.ErrOrderLinesAreRequired),
		errors.Is(err, commands.ErrLineQuantityIsInvalid),
		errors.Is(err, commands.ErrPaymentMethodIsEmpty),
		errors.Is(err, commands.ErrRatingIsInvalid),
		errors.Is(err, commands.ErrDeliveryFeeIsNegative):
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

// badRequest is for requests that fail before reaching the application
// layer: unparseable bodies, malformed identifiers in the path.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
