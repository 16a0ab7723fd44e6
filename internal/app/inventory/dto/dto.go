package dto

// ProductDTO contains the product fields returned by read queries.
// Timestamps use *string (RFC3339) to mirror how they come back from
// Spanner; use the utils helpers to parse them into time.Time.
type ProductDTO struct {
	ProductID     string  `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	SKU           string  `json:"sku"`
	SerialNumber  string  `json:"serialNumber"`
	StoreLocation string  `json:"storeLocation"`
	Status        string  `json:"status"`

	CurrentRenterName *string `json:"currentRenterName,omitempty"`
	CurrentDueDate    *string `json:"currentDueDate,omitempty"`

	CreatedAt *string `json:"createdAt,omitempty"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

// ProductSnapshotDTO mirrors the immutable copy stored on each rental.
type ProductSnapshotDTO struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	SerialNumber  string `json:"serialNumber"`
	StoreLocation string `json:"storeLocation"`
}

// RentalDTO contains the rental fields returned by read queries.
// Overdue and DueSoon are computed by the query at read time.
type RentalDTO struct {
	RentalID        string             `json:"id"`
	ProductID       string             `json:"productId"`
	ProductSnapshot ProductSnapshotDTO `json:"productSnapshot"`
	StaffName       string             `json:"staffName"`
	RentalDate      string             `json:"rentalDate"`
	DueDate         string             `json:"dueDate"`
	ReturnDate      *string            `json:"returnDate,omitempty"`
	Status          string             `json:"status"`
	Overdue         bool               `json:"overdue"`
	DueSoon         bool               `json:"dueSoon"`
	CreatedAt       *string            `json:"createdAt,omitempty"`
	UpdatedAt       *string            `json:"updatedAt,omitempty"`
}
