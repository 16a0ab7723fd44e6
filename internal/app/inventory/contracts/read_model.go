package contracts

import (
	"context"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
)

// ReadModel is the query-side interface. Reads run outside transactions;
// FindOpenRentalID is the one-shot lookup for check-in phase (a), which is
// deliberately not atomic with the check-in transaction.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error)
	ListProducts(ctx context.Context, limit, offset int) ([]*dto.ProductDTO, error)
	ListRentals(ctx context.Context, status string, limit, offset int) ([]*dto.RentalDTO, error)
	FindOpenRentalID(ctx context.Context, productID string) (rentalID string, found bool, err error)
}
