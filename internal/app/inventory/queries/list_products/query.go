package list_products

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/get_product"
)

// SpannerListProductsQuery lists products newest-first. This is the query
// shape the live product view subscribes to.
type SpannerListProductsQuery struct {
	Client *spanner.Client
}

func NewSpannerListProductsQuery(client *spanner.Client) *SpannerListProductsQuery {
	return &SpannerListProductsQuery{Client: client}
}

func (q *SpannerListProductsQuery) ListProducts(ctx context.Context, limit, offset int) ([]*dto.ProductDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, description, sku, serial_number,
		             store_location, status, current_renter_name,
		             current_due_date, created_at, updated_at
		      FROM products
		      ORDER BY created_at DESC
		      LIMIT @limit OFFSET @offset`,
		Params: map[string]interface{}{"limit": limit, "offset": offset},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*dto.ProductDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		p, err := get_product.DecodeProductRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
}
