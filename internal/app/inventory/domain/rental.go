package domain

import (
	"strings"
	"time"
)

// Field constants for rental change tracking
const (
	FieldRentalStatus = "status"
	FieldReturnDate   = "return_date"
)

// RentalStatus represents the lifecycle state of a rental record.
type RentalStatus string

const (
	// RentalStatusOpen indicates the product is still out with the staff member.
	RentalStatusOpen RentalStatus = "Open"

	// RentalStatusClosed indicates the product has been returned.
	RentalStatusClosed RentalStatus = "Closed"
)

// ProductSnapshot is an immutable copy of the product fields taken at
// book-out time, so rental history stays readable after the product record
// changes or is deleted.
type ProductSnapshot struct {
	Name          string
	SKU           string
	SerialNumber  string
	StoreLocation string
}

// Rental records one lending of a product to a staff member.
// Invariant: for a given product, at most one Open rental exists at any
// time. Rentals are never deleted and never re-opened.
type Rental struct {
	id         string
	productID  string
	snapshot   ProductSnapshot
	staffName  string
	rentalDate time.Time
	dueDate    time.Time
	returnDate *time.Time
	status     RentalStatus
	createdAt  time.Time
	updatedAt  time.Time
	changes    *ChangeTracker
	events     []DomainEvent
}

// NewRental opens a rental for the given product. The snapshot is copied
// from the product's current fields. The due date must not precede the
// rental date.
func NewRental(id string, product *Product, staffName string, rentalDate, dueDate time.Time, now time.Time) (*Rental, error) {
	if strings.TrimSpace(staffName) == "" {
		return nil, ErrEmptyStaffName
	}
	if dueDate.Before(rentalDate) {
		return nil, ErrDueDateBeforeRentalDate
	}

	r := &Rental{
		id:        id,
		productID: product.ID(),
		snapshot: ProductSnapshot{
			Name:          product.Name(),
			SKU:           product.SKU(),
			SerialNumber:  product.SerialNumber(),
			StoreLocation: product.StoreLocation(),
		},
		staffName:  strings.TrimSpace(staffName),
		rentalDate: rentalDate,
		dueDate:    dueDate,
		status:     RentalStatusOpen,
		createdAt:  now,
		updatedAt:  now,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}

	r.events = append(r.events, &RentalOpenedEvent{
		RentalID:  r.id,
		ProductID: r.productID,
		StaffName: r.staffName,
		DueDate:   r.dueDate,
		OpenedAt:  now,
	})

	return r, nil
}

// ReconstructRental rebuilds a Rental from persisted state.
func ReconstructRental(
	id, productID string,
	snapshot ProductSnapshot,
	staffName string,
	rentalDate, dueDate time.Time,
	returnDate *time.Time,
	status RentalStatus,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:         id,
		productID:  productID,
		snapshot:   snapshot,
		staffName:  staffName,
		rentalDate: rentalDate,
		dueDate:    dueDate,
		returnDate: returnDate,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}
}

// Getters

func (r *Rental) ID() string {
	return r.id
}

func (r *Rental) ProductID() string {
	return r.productID
}

func (r *Rental) Snapshot() ProductSnapshot {
	return r.snapshot
}

func (r *Rental) StaffName() string {
	return r.staffName
}

func (r *Rental) RentalDate() time.Time {
	return r.rentalDate
}

func (r *Rental) DueDate() time.Time {
	return r.dueDate
}

func (r *Rental) ReturnDate() *time.Time {
	return r.returnDate
}

func (r *Rental) Status() RentalStatus {
	return r.status
}

func (r *Rental) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Rental) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Rental) Changes() *ChangeTracker {
	return r.changes
}

func (r *Rental) DomainEvents() []DomainEvent {
	return r.events
}

// Close transitions the rental to Closed with the given return time.
func (r *Rental) Close(now time.Time) error {
	if r.status == RentalStatusClosed {
		return ErrRentalAlreadyClosed
	}

	ret := now
	r.status = RentalStatusClosed
	r.returnDate = &ret
	r.changes.MarkDirty(FieldRentalStatus)
	r.changes.MarkDirty(FieldReturnDate)
	r.updatedAt = now

	r.events = append(r.events, &RentalClosedEvent{
		RentalID:   r.id,
		ProductID:  r.productID,
		ReturnDate: ret,
		ClosedAt:   now,
	})

	return nil
}

// IsOverdue reports whether an open rental's due date has passed.
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.status == RentalStatusOpen && now.After(r.dueDate)
}

// IsDueSoon reports whether an open rental is due within 24 hours.
func (r *Rental) IsDueSoon(now time.Time) bool {
	if r.status != RentalStatusOpen {
		return false
	}
	diff := r.dueDate.Sub(now)
	return diff > 0 && diff <= 24*time.Hour
}

// ClearEvents clears the accumulated domain events.
func (r *Rental) ClearEvents() {
	r.events = make([]DomainEvent, 0)
}
