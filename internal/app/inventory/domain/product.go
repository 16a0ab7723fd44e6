package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking
const (
	FieldName          = "name"
	FieldDescription   = "description"
	FieldSKU           = "sku"
	FieldSerialNumber  = "serial_number"
	FieldStoreLocation = "store_location"
	FieldStatus        = "status"
	FieldRenterName    = "current_renter_name"
	FieldDueDate       = "current_due_date"
)

// ProductStatus represents the rental state of a product.
type ProductStatus string

const (
	// ProductStatusAvailable indicates the product can be booked out.
	ProductStatusAvailable ProductStatus = "Available"

	// ProductStatusRented indicates the product is held by exactly one
	// open rental.
	ProductStatusRented ProductStatus = "Rented"
)

// Product is the aggregate root for a physical equipment unit. The serial
// number identifies the unit globally; the SKU is the shared catalog code.
// Invariant: status is Rented iff the renter fields are set, and iff exactly
// one open rental references this product.
type Product struct {
	id                string
	name              string
	description       string
	sku               string
	serialNumber      string
	storeLocation     string
	status            ProductStatus
	currentRenterName *string
	currentDueDate    *time.Time
	createdAt         time.Time
	updatedAt         time.Time
	changes           *ChangeTracker
	events            []DomainEvent
}

// NewProduct creates a new Product in Available status. The SKU and serial
// number are normalized; validation failures are returned before any state
// is built.
func NewProduct(id, name, description, sku, serialNumber, storeLocation string, now time.Time) (*Product, error) {
	normalizedSKU := NormalizeSKU(sku)
	normalizedSerial := NormalizeSerial(serialNumber)

	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := ValidateSKU(normalizedSKU); err != nil {
		return nil, err
	}
	if normalizedSerial == "" {
		return nil, ErrEmptySerialNumber
	}
	if err := ValidateStoreLocation(storeLocation); err != nil {
		return nil, err
	}

	p := &Product{
		id:            id,
		name:          strings.TrimSpace(name),
		description:   strings.TrimSpace(description),
		sku:           normalizedSKU,
		serialNumber:  normalizedSerial,
		storeLocation: storeLocation,
		status:        ProductStatusAvailable,
		createdAt:     now,
		updatedAt:     now,
		changes:       NewChangeTracker(),
		events:        make([]DomainEvent, 0),
	}

	p.events = append(p.events, &ProductCreatedEvent{
		ProductID:     p.id,
		Name:          p.name,
		SKU:           p.sku,
		SerialNumber:  p.serialNumber,
		StoreLocation: p.storeLocation,
		CreatedAt:     now,
	})

	return p, nil
}

// ReconstructProduct rebuilds a Product from persisted state.
// Used by repositories when loading from the database.
func ReconstructProduct(
	id, name, description, sku, serialNumber, storeLocation string,
	status ProductStatus,
	currentRenterName *string,
	currentDueDate *time.Time,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:                id,
		name:              name,
		description:       description,
		sku:               sku,
		serialNumber:      serialNumber,
		storeLocation:     storeLocation,
		status:            status,
		currentRenterName: currentRenterName,
		currentDueDate:    currentDueDate,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		changes:           NewChangeTracker(),
		events:            make([]DomainEvent, 0),
	}
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) SerialNumber() string {
	return p.serialNumber
}

func (p *Product) StoreLocation() string {
	return p.storeLocation
}

func (p *Product) Status() ProductStatus {
	return p.status
}

func (p *Product) CurrentRenterName() *string {
	return p.currentRenterName
}

func (p *Product) CurrentDueDate() *time.Time {
	return p.currentDueDate
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Changes() *ChangeTracker {
	return p.changes
}

func (p *Product) DomainEvents() []DomainEvent {
	return p.events
}

// Business Methods

// UpdateDetails replaces the editable product fields. The serial number is
// normalized here; the caller is responsible for re-indexing when it changed.
func (p *Product) UpdateDetails(name, description, sku, serialNumber, storeLocation string, now time.Time) error {
	normalizedSKU := NormalizeSKU(sku)
	normalizedSerial := NormalizeSerial(serialNumber)

	if err := validateProductName(name); err != nil {
		return err
	}
	if err := ValidateSKU(normalizedSKU); err != nil {
		return err
	}
	if normalizedSerial == "" {
		return ErrEmptySerialNumber
	}
	if err := ValidateStoreLocation(storeLocation); err != nil {
		return err
	}

	changes := make(map[string]interface{})

	if trimmed := strings.TrimSpace(name); trimmed != p.name {
		p.name = trimmed
		p.changes.MarkDirty(FieldName)
		changes["name"] = p.name
	}
	if trimmed := strings.TrimSpace(description); trimmed != p.description {
		p.description = trimmed
		p.changes.MarkDirty(FieldDescription)
		changes["description"] = p.description
	}
	if normalizedSKU != p.sku {
		p.sku = normalizedSKU
		p.changes.MarkDirty(FieldSKU)
		changes["sku"] = p.sku
	}
	if normalizedSerial != p.serialNumber {
		p.serialNumber = normalizedSerial
		p.changes.MarkDirty(FieldSerialNumber)
		changes["serial_number"] = p.serialNumber
	}
	if storeLocation != p.storeLocation {
		p.storeLocation = storeLocation
		p.changes.MarkDirty(FieldStoreLocation)
		changes["store_location"] = p.storeLocation
	}

	if len(changes) > 0 {
		p.updatedAt = now
		p.events = append(p.events, &ProductUpdatedEvent{
			ProductID: p.id,
			UpdatedAt: now,
			Changes:   changes,
		})
	}

	return nil
}

// BookOut transitions the product to Rented and caches the renter name and
// due date. Only Available products can be booked out.
func (p *Product) BookOut(staffName string, dueDate time.Time, now time.Time) error {
	if p.status != ProductStatusAvailable {
		return ErrProductNotAvailable
	}

	renter := strings.TrimSpace(staffName)
	due := dueDate

	p.status = ProductStatusRented
	p.currentRenterName = &renter
	p.currentDueDate = &due
	p.changes.MarkDirty(FieldStatus)
	p.changes.MarkDirty(FieldRenterName)
	p.changes.MarkDirty(FieldDueDate)
	p.updatedAt = now

	return nil
}

// CheckIn transitions the product back to Available and clears the renter
// fields. Only Rented products can be checked in.
func (p *Product) CheckIn(now time.Time) error {
	if p.status != ProductStatusRented {
		return ErrProductNotCurrentlyRented
	}

	p.status = ProductStatusAvailable
	p.currentRenterName = nil
	p.currentDueDate = nil
	p.changes.MarkDirty(FieldStatus)
	p.changes.MarkDirty(FieldRenterName)
	p.changes.MarkDirty(FieldDueDate)
	p.updatedAt = now

	return nil
}

// Delete marks the product for removal. Products with an open rental cannot
// be deleted; the rental must be checked in first.
func (p *Product) Delete(now time.Time) error {
	if p.status == ProductStatusRented {
		return ErrProductCurrentlyRented
	}

	p.events = append(p.events, &ProductDeletedEvent{
		ProductID:    p.id,
		SerialNumber: p.serialNumber,
		DeletedAt:    now,
	})

	return nil
}

// IsAvailable returns true if the product can be booked out.
func (p *Product) IsAvailable() bool {
	return p.status == ProductStatusAvailable
}

// ClearEvents clears the accumulated domain events.
// Should be called after events have been published.
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}

func validateProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyProductName
	}
	return nil
}
