package m_serial_index

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a mutation creating the index row for a serial.
func InsertMutation(serialNumber, productID string, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColSerialNumber, ColProductID, ColCreatedAt},
		[]interface{}{serialNumber, productID, createdAt})
}

// DeleteMutation builds a mutation deleting the index row for a serial.
func DeleteMutation(serialNumber string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{serialNumber})
}
