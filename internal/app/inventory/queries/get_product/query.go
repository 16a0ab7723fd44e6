package get_product

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/utils"
)

// SpannerGetProductQuery is a concrete query implementation that reads from
// Spanner directly.
type SpannerGetProductQuery struct {
	Client *spanner.Client
}

func NewSpannerGetProductQuery(client *spanner.Client) *SpannerGetProductQuery {
	return &SpannerGetProductQuery{Client: client}
}

// GetProduct fetches a single product row.
// Returns domain.ErrProductNotFound when no row exists.
func (q *SpannerGetProductQuery) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, description, sku, serial_number,
		             store_location, status, current_renter_name,
		             current_due_date, created_at, updated_at
		      FROM products
		      WHERE product_id = @id`,
		Params: map[string]interface{}{"id": productID},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return DecodeProductRow(row)
}

// DecodeProductRow converts a product row into a DTO. Shared with the list
// query, which selects the same column set.
func DecodeProductRow(row *spanner.Row) (*dto.ProductDTO, error) {
	var (
		id, name             string
		description          spanner.NullString
		sku, serial, loc     string
		status               string
		renterName           spanner.NullString
		dueDate              spanner.NullTime
		createdAt, updatedAt time.Time
	)

	if err := row.Columns(&id, &name, &description, &sku, &serial, &loc,
		&status, &renterName, &dueDate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	out := &dto.ProductDTO{
		ProductID:     id,
		Name:          name,
		SKU:           sku,
		SerialNumber:  serial,
		StoreLocation: loc,
		Status:        status,
	}

	if description.Valid {
		desc := description.StringVal
		out.Description = &desc
	}
	if renterName.Valid {
		rn := renterName.StringVal
		out.CurrentRenterName = &rn
	}
	if dueDate.Valid {
		dd := dueDate.Time
		out.CurrentDueDate = utils.FormatTimePtr(&dd)
	}

	out.CreatedAt = utils.FormatTimePtr(&createdAt)
	out.UpdatedAt = utils.FormatTimePtr(&updatedAt)

	return out, nil
}
