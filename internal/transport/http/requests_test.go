package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

func TestParseDateAcceptsRFC3339(t *testing.T) {
	got, err := parseDate("dueDate", "2026-09-05T10:30:00+10:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 30, 0, 0, time.UTC), got)
}

func TestParseDateAcceptsBareDate(t *testing.T) {
	got, err := parseDate("rentalDate", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRejectsEmpty(t *testing.T) {
	_, err := parseDate("dueDate", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dueDate is required")
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := parseDate("dueDate", "next tuesday")
	require.Error(t, err)
}

func TestStatusOfMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrRentalNotFound, http.StatusNotFound},
		{domain.ErrDuplicateSerialNumber, http.StatusConflict},
		{domain.ErrProductNotAvailable, http.StatusConflict},
		{domain.ErrProductNotCurrentlyRented, http.StatusConflict},
		{domain.ErrProductCurrentlyRented, http.StatusConflict},
		{domain.ErrRentalAlreadyClosed, http.StatusConflict},
		{domain.ErrInvalidSKU, http.StatusBadRequest},
		{domain.ErrInvalidStoreLocation, http.StatusBadRequest},
		{domain.ErrEmptyStaffName, http.StatusBadRequest},
		{domain.ErrDueDateBeforeRentalDate, http.StatusBadRequest},
		{txn.ErrAborted, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, statusOf(tc.err), "error %v", tc.err)
	}
}

func TestStatusOfUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("create product: %w", domain.ErrDuplicateSerialNumber)
	assert.Equal(t, http.StatusConflict, statusOf(wrapped))

	aborted := fmt.Errorf("%w: transaction retries exhausted", txn.ErrAborted)
	assert.Equal(t, http.StatusServiceUnavailable, statusOf(aborted))
}
