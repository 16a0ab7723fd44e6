package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID         = "product_id"
	ColName              = "name"
	ColDescription       = "description"
	ColSKU               = "sku"
	ColSerialNumber      = "serial_number"
	ColStoreLocation     = "store_location"
	ColStatus            = "status"
	ColCurrentRenterName = "current_renter_name"
	ColCurrentDueDate    = "current_due_date"
	ColCreatedAt         = "created_at"
	ColUpdatedAt         = "updated_at"
)

// ReadColumns lists every column in persisted order, for row reads.
var ReadColumns = []string{
	ColProductID,
	ColName,
	ColDescription,
	ColSKU,
	ColSerialNumber,
	ColStoreLocation,
	ColStatus,
	ColCurrentRenterName,
	ColCurrentDueDate,
	ColCreatedAt,
	ColUpdatedAt,
}
