package repo

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/models/m_product"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// ProductRepo is the Spanner implementation of the write-side repository.
// Mutation builders return *spanner.Mutation objects but never apply them;
// GetTx reads through the caller's transaction so the read and the staged
// write commit under the same isolation.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildInsertValues constructs the values map used for insertion.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildInsertValues(p *domain.Product) map[string]interface{} {
	var description *string
	if d := p.Description(); d != "" {
		desc := d
		description = &desc
	}

	return m_product.BuildInsertMap(
		p.ID(),
		p.Name(),
		description,
		p.SKU(),
		p.SerialNumber(),
		p.StoreLocation(),
		string(p.Status()),
		p.CreatedAt().UTC(),
		p.UpdatedAt().UTC(),
	)
}

// InsertMut builds an Insert mutation for a new product.
func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_product.InsertMutation(buildInsertValues(p))
}

// UpdateMut builds an Update mutation using the aggregate's ChangeTracker.
// It updates only dirty fields and always stamps updated_at when there are
// changes.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || p.Changes() == nil || !p.Changes().HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}

	if p.Changes().Dirty(domain.FieldName) {
		updates[m_product.ColName] = p.Name()
	}
	if p.Changes().Dirty(domain.FieldDescription) {
		if p.Description() == "" {
			updates[m_product.ColDescription] = nil
		} else {
			updates[m_product.ColDescription] = p.Description()
		}
	}
	if p.Changes().Dirty(domain.FieldSKU) {
		updates[m_product.ColSKU] = p.SKU()
	}
	if p.Changes().Dirty(domain.FieldSerialNumber) {
		updates[m_product.ColSerialNumber] = p.SerialNumber()
	}
	if p.Changes().Dirty(domain.FieldStoreLocation) {
		updates[m_product.ColStoreLocation] = p.StoreLocation()
	}
	if p.Changes().Dirty(domain.FieldStatus) {
		updates[m_product.ColStatus] = string(p.Status())
	}
	if p.Changes().Dirty(domain.FieldRenterName) {
		if p.CurrentRenterName() != nil {
			updates[m_product.ColCurrentRenterName] = *p.CurrentRenterName()
		} else {
			updates[m_product.ColCurrentRenterName] = nil
		}
	}
	if p.Changes().Dirty(domain.FieldDueDate) {
		if p.CurrentDueDate() != nil {
			updates[m_product.ColCurrentDueDate] = p.CurrentDueDate().UTC()
		} else {
			updates[m_product.ColCurrentDueDate] = nil
		}
	}

	if len(updates) == 0 {
		return nil
	}

	updates[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()
	return m_product.UpdateMutation(p.ID(), updates)
}

// DeleteMut builds a Delete mutation for the product row.
func (r *ProductRepo) DeleteMut(productID string) *spanner.Mutation {
	return m_product.DeleteMutation(productID)
}

// GetTx reads the product row within the transaction snapshot and rebuilds
// the aggregate. Returns domain.ErrProductNotFound when no row exists.
func (r *ProductRepo) GetTx(ctx context.Context, tx *txn.Tx, productID string) (*domain.Product, error) {
	row, err := tx.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.ReadColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return decodeProduct(row)
}

func decodeProduct(row *spanner.Row) (*domain.Product, error) {
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

	desc := ""
	if description.Valid {
		desc = description.StringVal
	}

	var renter *string
	if renterName.Valid {
		rn := renterName.StringVal
		renter = &rn
	}
	var due *time.Time
	if dueDate.Valid {
		d := dueDate.Time.UTC()
		due = &d
	}

	return domain.ReconstructProduct(
		id, name, desc, sku, serial, loc,
		domain.ProductStatus(status),
		renter, due,
		createdAt.UTC(), updatedAt.UTC(),
	), nil
}
