package http

import (
	"errors"
	"log/slog"
	"net/http"

	"forwarding/internal/core/application/usecases/commands"
	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/parcel"
	"forwarding/internal/core/domain/model/race"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type errorMapping struct {
	target error
	status int
}

// First match wins, so the more specific kinds come first.
var errorMappings = []errorMapping{
	{account.ErrInsufficientBalance, http.StatusPaymentRequired},

	{services.ErrPackageNotOwned, http.StatusForbidden},

	{parcel.ErrPackageProhibited, http.StatusUnprocessableEntity},
	{race.ErrRaceAttachmentRejected, http.StatusUnprocessableEntity},
	{services.ErrPackageHasNotArrived, http.StatusUnprocessableEntity},
	{commands.ErrPackageIsNotPaid, http.StatusUnprocessableEntity},
	{commands.ErrHouseDeliveryRequiresAddress, http.StatusUnprocessableEntity},
	{parcel.ErrPackageIsNotMeasured, http.StatusUnprocessableEntity},

	{parcel.ErrInvalidTransition, http.StatusConflict},
	{parcel.ErrPackageAlreadyPaid, http.StatusConflict},
	{commands.ErrTrackingCodeIsTaken, http.StatusConflict},
	{commands.ErrRaceNameIsTaken, http.StatusConflict},
	{commands.ErrRaceHasStarted, http.StatusConflict},
	{errs.ErrObjectAlreadyExists, http.StatusConflict},
	{errs.ErrVersionIsInvalid, http.StatusConflict},

	{errs.ErrObjectNotFound, http.StatusNotFound},

	{commands.ErrRaceStartIsInThePast, http.StatusBadRequest},
	{kernel.ErrMalformedTrackingCode, http.StatusBadRequest},
	{kernel.ErrCurrencyMismatch, http.StatusBadRequest},
	{errs.ErrValueIsInvalid, http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, http.StatusBadRequest},
	{errs.ErrValueIsRequired, http.StatusBadRequest},
}

// statusFor maps an application error to an HTTP status. Unknown errors are 500.
func statusFor(err error) int {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// badRequest wraps input that could not be decoded or validated.
func badRequest(param string, err error) error {
	return errs.NewValueIsInvalidErrorWithCause(param, err)
}

// NewErrorHandler renders every error as ErrorResponse. Server errors are
// logged and their message is not exposed.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status  int
			message string
			httpErr *echo.HTTPError
		)

		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = http.StatusText(status)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else {
			status = statusFor(err)
			message = err.Error()
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
			message = http.StatusText(status)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Code: status, Message: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
