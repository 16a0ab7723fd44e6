package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert mutation for a product using a map
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

// UpdateMutation builds a spanner.Update mutation for a product.
// The values map should NOT include the product_id key; the primary key is
// accepted separately and placed first.
func UpdateMutation(productID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation builds a spanner.Delete mutation for a product row.
func DeleteMutation(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}

// BuildInsertMap prepares the canonical fields for insertion. A new product
// is always Available, so the renter columns start out null.
func BuildInsertMap(productID, name string, description *string, sku, serialNumber, storeLocation string,
	status string, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColProductID:         productID,
		ColName:              name,
		ColSKU:               sku,
		ColSerialNumber:      serialNumber,
		ColStoreLocation:     storeLocation,
		ColStatus:            status,
		ColCurrentRenterName: nil,
		ColCurrentDueDate:    nil,
		ColCreatedAt:         createdAt,
		ColUpdatedAt:         updatedAt,
	}

	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}

	return m
}
