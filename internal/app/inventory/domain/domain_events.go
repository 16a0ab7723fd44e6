package domain

import "time"

// DomainEvent is a marker interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ProductCreatedEvent is raised when a new product is registered.
type ProductCreatedEvent struct {
	ProductID     string
	Name          string
	SKU           string
	SerialNumber  string
	StoreLocation string
	CreatedAt     time.Time
}

func (e *ProductCreatedEvent) EventType() string {
	return "product.created"
}

func (e *ProductCreatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// ProductUpdatedEvent is raised when product fields are edited.
type ProductUpdatedEvent struct {
	ProductID string
	UpdatedAt time.Time
	Changes   map[string]interface{} // field name -> new value
}

func (e *ProductUpdatedEvent) EventType() string {
	return "product.updated"
}

func (e *ProductUpdatedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// ProductDeletedEvent is raised when a product is removed from inventory.
type ProductDeletedEvent struct {
	ProductID    string
	SerialNumber string
	DeletedAt    time.Time
}

func (e *ProductDeletedEvent) EventType() string {
	return "product.deleted"
}

func (e *ProductDeletedEvent) AggregateID() string {
	return e.ProductID
}

func (e *ProductDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}

// RentalOpenedEvent is raised when a product is booked out to a staff member.
type RentalOpenedEvent struct {
	RentalID  string
	ProductID string
	StaffName string
	DueDate   time.Time
	OpenedAt  time.Time
}

func (e *RentalOpenedEvent) EventType() string {
	return "rental.opened"
}

func (e *RentalOpenedEvent) AggregateID() string {
	return e.RentalID
}

func (e *RentalOpenedEvent) OccurredAt() time.Time {
	return e.OpenedAt
}

// RentalClosedEvent is raised when a rented product is checked back in.
type RentalClosedEvent struct {
	RentalID   string
	ProductID  string
	ReturnDate time.Time
	ClosedAt   time.Time
}

func (e *RentalClosedEvent) EventType() string {
	return "rental.closed"
}

func (e *RentalClosedEvent) AggregateID() string {
	return e.RentalID
}

func (e *RentalClosedEvent) OccurredAt() time.Time {
	return e.ClosedAt
}
