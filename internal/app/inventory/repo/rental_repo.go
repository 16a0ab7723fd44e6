package repo

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/models/m_rental"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// RentalRepo is the Spanner implementation of the rental write-side
// repository. Mutation builders return *spanner.Mutation but never apply it.
type RentalRepo struct{}

func NewRentalRepo() *RentalRepo {
	return &RentalRepo{}
}

// buildInsertValues constructs the values map used for insertion.
func buildRentalInsertValues(r *domain.Rental) map[string]interface{} {
	snap := r.Snapshot()
	return m_rental.BuildInsertMap(
		r.ID(),
		r.ProductID(),
		snap.Name,
		snap.SKU,
		snap.SerialNumber,
		snap.StoreLocation,
		r.StaffName(),
		r.RentalDate().UTC(),
		r.DueDate().UTC(),
		string(r.Status()),
		r.CreatedAt().UTC(),
		r.UpdatedAt().UTC(),
	)
}

// InsertMut builds an Insert mutation for a newly opened rental.
func (r *RentalRepo) InsertMut(rental *domain.Rental) *spanner.Mutation {
	if rental == nil {
		return nil
	}
	return m_rental.InsertMutation(buildRentalInsertValues(rental))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
// Closing a rental touches status and return_date; updated_at is always
// stamped when there are changes.
func (r *RentalRepo) UpdateMut(rental *domain.Rental) *spanner.Mutation {
	if rental == nil || rental.Changes() == nil || !rental.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if rental.Changes().Dirty(domain.FieldRentalStatus) {
		updates[m_rental.ColStatus] = string(rental.Status())
	}
	if rental.Changes().Dirty(domain.FieldReturnDate) {
		if rental.ReturnDate() != nil {
			updates[m_rental.ColReturnDate] = rental.ReturnDate().UTC()
		} else {
			updates[m_rental.ColReturnDate] = nil
		}
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_rental.ColUpdatedAt] = rental.UpdatedAt().UTC()
	return m_rental.UpdateMutation(rental.ID(), updates)
}

// GetTx reads the rental row within the transaction snapshot and rebuilds
// the aggregate. Returns domain.ErrRentalNotFound when no row exists.
func (r *RentalRepo) GetTx(ctx context.Context, tx *txn.Tx, rentalID string) (*domain.Rental, error) {
	row, err := tx.ReadRow(ctx, m_rental.TableName, spanner.Key{rentalID}, m_rental.ReadColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return decodeRental(row)
}

func decodeRental(row *spanner.Row) (*domain.Rental, error) {
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

	var ret *time.Time
	if returnDate.Valid {
		rd := returnDate.Time.UTC()
		ret = &rd
	}

	return domain.ReconstructRental(
		id, productID,
		domain.ProductSnapshot{
			Name:          name,
			SKU:           sku,
			SerialNumber:  serial,
			StoreLocation: loc,
		},
		staffName,
		rentalDate.UTC(), dueDate.UTC(),
		ret,
		domain.RentalStatus(status),
		createdAt.UTC(), updatedAt.UTC(),
	), nil
}
