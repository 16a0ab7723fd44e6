package open_rental

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
)

// SpannerOpenRentalQuery is the one-shot lookup used by check-in phase (a).
// It runs outside the check-in transaction; the transaction re-validates the
// product state afterwards.
type SpannerOpenRentalQuery struct {
	Client *spanner.Client
}

func NewSpannerOpenRentalQuery(client *spanner.Client) *SpannerOpenRentalQuery {
	return &SpannerOpenRentalQuery{Client: client}
}

// FindOpenRentalID returns the id of the product's open rental, if any.
// Zero or one result is expected; with more than one (an invariant breach)
// the first is returned.
func (q *SpannerOpenRentalQuery) FindOpenRentalID(ctx context.Context, productID string) (string, bool, error) {
	stmt := spanner.Statement{
		SQL: `SELECT rental_id
		      FROM rentals
		      WHERE product_id = @productId AND status = @status
		      LIMIT 1`,
		Params: map[string]interface{}{
			"productId": productID,
			"status":    string(domain.RentalStatusOpen),
		},
	}

	iter := q.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var rentalID string
	if err := row.Columns(&rentalID); err != nil {
		return "", false, err
	}
	return rentalID, true, nil
}
