package http

import (
	"fmt"
	"time"
)

// ProductRequest is the body for product create and update calls.
type ProductRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	SKU           string `json:"sku"`
	SerialNumber  string `json:"serialNumber"`
	StoreLocation string `json:"storeLocation"`

	// OldSerialNumber is required on update so the stale index row can be
	// removed when the serial changes.
	OldSerialNumber string `json:"oldSerialNumber,omitempty"`
}

// BookOutRequest is the body for POST /api/rentals/book-out.
type BookOutRequest struct {
	ProductID  string `json:"productId"`
	StaffName  string `json:"staffName"`
	RentalDate string `json:"rentalDate"`
	DueDate    string `json:"dueDate"`
}

// CheckInRequest is the body for POST /api/rentals/check-in.
type CheckInRequest struct {
	ProductID string `json:"productId"`
}

// parseDate accepts RFC3339 timestamps or bare dates. Bare dates come from
// the booking form's date pickers and resolve to midnight UTC.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be RFC3339 or YYYY-MM-DD", field)
	}
	return t.UTC(), nil
}
