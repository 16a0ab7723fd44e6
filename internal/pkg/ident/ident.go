package ident

import "github.com/google/uuid"

// Prefixes are purely for human debugging; ids are opaque to the system.
const (
	productPrefix = "prod_"
	rentalPrefix  = "rent_"
)

// NewProductID returns a new opaque product id.
func NewProductID() string {
	return productPrefix + uuid.New().String()
}

// NewRentalID returns a new opaque rental id.
func NewRentalID() string {
	return rentalPrefix + uuid.New().String()
}
