package shared

import (
	"encoding/json"
	"fmt"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload
// suitable for the outbox. The domain layer intentionally avoids
// serialization concerns; this adapter extracts primitives.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	switch e := ev.(type) {
	case *domain.ProductCreatedEvent:
		payload := map[string]interface{}{
			"product_id":     e.ProductID,
			"name":           e.Name,
			"sku":            e.SKU,
			"serial_number":  e.SerialNumber,
			"store_location": e.StoreLocation,
			"created_at":     e.CreatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ProductUpdatedEvent:
		payload := map[string]interface{}{
			"product_id": e.ProductID,
			"changes":    e.Changes,
			"updated_at": e.UpdatedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.ProductDeletedEvent:
		payload := map[string]interface{}{
			"product_id":    e.ProductID,
			"serial_number": e.SerialNumber,
			"deleted_at":    e.DeletedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.RentalOpenedEvent:
		payload := map[string]interface{}{
			"rental_id":  e.RentalID,
			"product_id": e.ProductID,
			"staff_name": e.StaffName,
			"due_date":   e.DueDate,
			"opened_at":  e.OpenedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err

	case *domain.RentalClosedEvent:
		payload := map[string]interface{}{
			"rental_id":   e.RentalID,
			"product_id":  e.ProductID,
			"return_date": e.ReturnDate,
			"closed_at":   e.ClosedAt,
		}
		b, err := json.Marshal(payload)
		return string(b), err
	}

	// Fallback: try to marshal the event directly.
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}
