package domain

import "errors"

// Errors surfaced by product operations.
var (
	// ErrProductNotFound indicates that a product with the given id does not
	// exist; typically stale UI state or a race with a concurrent delete.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateSerialNumber indicates the normalized serial number is
	// already held by another product. The caller must choose a different
	// value; retrying unchanged will fail again.
	ErrDuplicateSerialNumber = errors.New("serial number already exists")

	// ErrProductNotAvailable indicates a book-out attempt on a product that
	// is not in Available status.
	ErrProductNotAvailable = errors.New("product is not available for rental")

	// ErrProductNotCurrentlyRented indicates a check-in attempt on a product
	// that is not in Rented status.
	ErrProductNotCurrentlyRented = errors.New("product is not currently rented")

	// ErrProductCurrentlyRented indicates a delete attempt on a product with
	// an open rental.
	ErrProductCurrentlyRented = errors.New("product is currently rented")
)

// Errors surfaced by rental operations.
var (
	// ErrRentalNotFound indicates that a rental with the given id does not exist.
	ErrRentalNotFound = errors.New("rental not found")

	// ErrRentalAlreadyClosed indicates an attempt to close a rental twice.
	ErrRentalAlreadyClosed = errors.New("rental is already closed")
)

// Validation errors. These are raised before any store interaction.
var (
	// ErrInvalidSKU indicates the SKU does not match the allowed format.
	ErrInvalidSKU = errors.New("sku must be 2-40 characters of letters, digits, '.', '_' or '-'")

	// ErrInvalidStoreLocation indicates an unknown store location code.
	ErrInvalidStoreLocation = errors.New("unknown store location")

	// ErrEmptyProductName indicates a product with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrEmptySerialNumber indicates a product with an empty serial number.
	ErrEmptySerialNumber = errors.New("serial number cannot be empty")

	// ErrEmptyStaffName indicates a rental without a staff member name.
	ErrEmptyStaffName = errors.New("staff name cannot be empty")

	// ErrDueDateBeforeRentalDate indicates a rental whose due date precedes
	// its rental date.
	ErrDueDateBeforeRentalDate = errors.New("due date cannot be before rental date")
)
