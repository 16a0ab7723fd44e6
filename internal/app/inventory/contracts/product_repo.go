package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// ProductRepo is the write-side repository interface for products.
// Mutation builders return Spanner mutations; they do not apply them.
// GetTx reads within the caller's transaction so status checks and the
// subsequent write commit atomically.
type ProductRepo interface {
	// GetTx loads the product inside the transaction snapshot.
	// Returns domain.ErrProductNotFound when no row exists.
	GetTx(ctx context.Context, tx *txn.Tx, productID string) (*domain.Product, error)

	// InsertMut returns a mutation that inserts the product (or nil if none).
	InsertMut(p *domain.Product) *spanner.Mutation

	// UpdateMut returns a mutation that updates the product according to its
	// ChangeTracker (or nil).
	UpdateMut(p *domain.Product) *spanner.Mutation

	// DeleteMut returns a mutation that deletes the product row.
	DeleteMut(productID string) *spanner.Mutation
}
