package m_rental

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a rental using a map
// of values. Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation for a rental.
// The values map should NOT include the rental_id key; the primary key is
// accepted separately and placed first.
func UpdateMutation(rentalID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColRentalID}
	vals := []interface{}{rentalID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// BuildInsertMap prepares the canonical fields for a newly opened rental.
// A new rental is always Open with no return date.
func BuildInsertMap(rentalID, productID, productName, productSKU, productSerial, productLocation,
	staffName string, rentalDate, dueDate time.Time, status string,
	createdAt, updatedAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColRentalID:             rentalID,
		ColProductID:            productID,
		ColProductName:          productName,
		ColProductSKU:           productSKU,
		ColProductSerialNumber:  productSerial,
		ColProductStoreLocation: productLocation,
		ColStaffName:            staffName,
		ColRentalDate:           rentalDate,
		ColDueDate:              dueDate,
		ColReturnDate:           nil,
		ColStatus:               status,
		ColCreatedAt:            createdAt,
		ColUpdatedAt:            updatedAt,
	}
}
