package m_serial_index

// Field constants for the serial_index table. The table is keyed by the
// normalized serial number; one row per live serial.
const (
	TableName = "serial_index"

	ColSerialNumber = "serial_number"
	ColProductID    = "product_id"
	ColCreatedAt    = "created_at"
)
