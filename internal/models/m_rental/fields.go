package m_rental

// Field constants for the rentals table. The product_* columns are the
// immutable snapshot copied at book-out time.
const (
	TableName = "rentals"

	ColRentalID             = "rental_id"
	ColProductID            = "product_id"
	ColProductName          = "product_name"
	ColProductSKU           = "product_sku"
	ColProductSerialNumber  = "product_serial_number"
	ColProductStoreLocation = "product_store_location"
	ColStaffName            = "staff_name"
	ColRentalDate           = "rental_date"
	ColDueDate              = "due_date"
	ColReturnDate           = "return_date"
	ColStatus               = "status"
	ColCreatedAt            = "created_at"
	ColUpdatedAt            = "updated_at"
)

// ReadColumns lists every column in persisted order, for row reads.
var ReadColumns = []string{
	ColRentalID,
	ColProductID,
	ColProductName,
	ColProductSKU,
	ColProductSerialNumber,
	ColProductStoreLocation,
	ColStaffName,
	ColRentalDate,
	ColDueDate,
	ColReturnDate,
	ColStatus,
	ColCreatedAt,
	ColUpdatedAt,
}
