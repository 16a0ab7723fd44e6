package list_rentals

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/utils"
)

// SpannerListRentalsQuery lists rentals by status. Open rentals are ordered
// by due date ascending (soonest due first); closed rentals by return date
// descending (most recently returned first). These are the two query shapes
// the live rental views subscribe to.
type SpannerListRentalsQuery struct {
	Client *spanner.Client
}

func NewSpannerListRentalsQuery(client *spanner.Client) *SpannerListRentalsQuery {
	return &SpannerListRentalsQuery{Client: client}
}

func (q *SpannerListRentalsQuery) ListRentals(ctx context.Context, status string, limit, offset int) ([]*dto.RentalDTO, error) {
	var order string
	switch domain.RentalStatus(status) {
	case domain.RentalStatusOpen:
		order = "due_date ASC"
	case domain.RentalStatusClosed:
		order = "return_date DESC"
	default:
		return nil, fmt.Errorf("unknown rental status %q", status)
	}

	stmt := spanner.Statement{
		SQL: `SELECT rental_id, product_id, product_name, product_sku,
		             product_serial_number, product_store_location,
		             staff_name, rental_date, due_date, return_date,
		             status, created_at, updated_at
		      FROM rentals
		      WHERE status = @status
		      ORDER BY ` + order + `
		      LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{"status": status, "limit": limit, "offset": offset},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	now := time.Now().UTC()

	var out []*dto.RentalDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		r, err := decodeRentalRow(row, now)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
}

func decodeRentalRow(row *spanner.Row, now time.Time) (*dto.RentalDTO, error) {
	var (
		id, productID          string
		name, sku, serial, loc string
		staffName              string
		rentalDate, dueDate    time.Time
		returnDate             spanner.NullTime
		status                 string
		createdAt, updatedAt   time.Time
	)

	if err := row.Columns(&id, &productID, &name, &sku, &serial, &loc,
		&staffName, &rentalDate, &dueDate, &returnDate, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	out := &dto.RentalDTO{
		RentalID:  id,
		ProductID: productID,
		ProductSnapshot: dto.ProductSnapshotDTO{
			Name:          name,
			SKU:           sku,
			SerialNumber:  serial,
			StoreLocation: loc,
		},
		StaffName:  staffName,
		RentalDate: rentalDate.UTC().Format(time.RFC3339),
		DueDate:    dueDate.UTC().Format(time.RFC3339),
		Status:     status,
	}

	if returnDate.Valid {
		rd := returnDate.Time
		out.ReturnDate = utils.FormatTimePtr(&rd)
	}

	// Due-state flags are computed at read time, mirroring how the UI
	// derives overdue highlighting from the live snapshot.
	if domain.RentalStatus(status) == domain.RentalStatusOpen {
		out.Overdue = now.After(dueDate)
		diff := dueDate.Sub(now)
		out.DueSoon = diff > 0 && diff <= 24*time.Hour
	}

	out.CreatedAt = utils.FormatTimePtr(&createdAt)
	out.UpdatedAt = utils.FormatTimePtr(&updatedAt)

	return out, nil
}
