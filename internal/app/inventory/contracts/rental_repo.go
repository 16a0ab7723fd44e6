package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// RentalRepo is the write-side repository interface for rental records.
// Mutation builders return Spanner mutations; they do not apply them.
type RentalRepo interface {
	// GetTx loads the rental inside the transaction snapshot.
	// Returns domain.ErrRentalNotFound when no row exists.
	GetTx(ctx context.Context, tx *txn.Tx, rentalID string) (*domain.Rental, error)

	// InsertMut returns a mutation that inserts the rental (or nil if none).
	InsertMut(r *domain.Rental) *spanner.Mutation

	// UpdateMut returns a mutation that updates the rental according to its
	// ChangeTracker (or nil).
	UpdateMut(r *domain.Rental) *spanner.Mutation
}
