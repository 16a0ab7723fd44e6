package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/logger"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/metrics"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// statusOf maps domain errors to HTTP status codes. Conflicts cover both
// uniqueness violations and state-machine guards: the client's view was
// stale, re-reading and retrying is the remedy.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrDuplicateSerialNumber),
		errors.Is(err, domain.ErrProductNotAvailable),
		errors.Is(err, domain.ErrProductNotCurrentlyRented),
		errors.Is(err, domain.ErrProductCurrentlyRented),
		errors.Is(err, domain.ErrRentalAlreadyClosed):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInvalidSKU),
		errors.Is(err, domain.ErrInvalidStoreLocation),
		errors.Is(err, domain.ErrEmptyProductName),
		errors.Is(err, domain.ErrEmptySerialNumber),
		errors.Is(err, domain.ErrEmptyStaffName),
		errors.Is(err, domain.ErrDueDateBeforeRentalDate):
		return http.StatusBadRequest

	case errors.Is(err, txn.ErrAborted):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error as a JSON response. Internal errors are
// logged with detail but returned opaque.
func writeError(c echo.Context, err error) error {
	status := statusOf(err)
	if errors.Is(err, txn.ErrAborted) {
		metrics.TxnAbortRetriesCounter.Inc()
	}
	if status == http.StatusInternalServerError {
		logger.FromEcho(c).Error("request failed", zap.Error(err))
		return c.JSON(status, echo.Map{"error": "internal server error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
