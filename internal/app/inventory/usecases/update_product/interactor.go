package update_product

import (
	"context"

	contracts "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/contracts"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	shared "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/shared"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/clock"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// Request represents the update-product request. All editable fields are
// replaced; OldSerialNumber is the serial the caller last saw, used to
// decide whether the uniqueness index must be re-keyed.
type Request struct {
	ProductID       string
	Name            string
	Description     string
	SKU             string
	SerialNumber    string
	OldSerialNumber string
	StoreLocation   string
}

// Interactor applies product edits. When the serial number changes, the
// uniqueness check, the old index delete, the new index insert and the
// product update all commit in one atomic unit, so there is no window with
// two serials or zero serials indexing the product.
type Interactor struct {
	Products contracts.ProductRepo
	Serials  contracts.SerialIndex
	Outbox   contracts.OutboxRepo
	Tx       contracts.Transactor
	Clock    clock.Clock
}

func NewInteractor(products contracts.ProductRepo, serials contracts.SerialIndex, outbox contracts.OutboxRepo, tx contracts.Transactor, clk clock.Clock) *Interactor {
	return &Interactor{
		Products: products,
		Serials:  serials,
		Outbox:   outbox,
		Tx:       tx,
		Clock:    clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	newSerial := domain.NormalizeSerial(req.SerialNumber)
	oldSerial := domain.NormalizeSerial(req.OldSerialNumber)

	return it.Tx.ReadWrite(ctx, func(ctx context.Context, tx *txn.Tx) error {
		product, err := it.Products.GetTx(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		if err := product.UpdateDetails(req.Name, req.Description, req.SKU,
			req.SerialNumber, req.StoreLocation, now); err != nil {
			return err
		}

		plan := txn.NewPlan()

		if newSerial != oldSerial {
			owner, exists, err := it.Serials.LookupTx(ctx, tx, newSerial)
			if err != nil {
				return err
			}
			if exists && owner != product.ID() {
				return domain.ErrDuplicateSerialNumber
			}
			plan.Add(it.Serials.DeleteMut(oldSerial))
			// A replayed update with a stale OldSerialNumber finds its own
			// index row already in place; inserting it again would fail the
			// commit. The delete of the stale key is a no-op in that case.
			if !exists {
				plan.Add(it.Serials.InsertMut(newSerial, product.ID(), now))
			}
		}

		plan.Add(it.Products.UpdateMut(product))
		if err := shared.AddEventsToPlan(plan, it.Outbox, product.DomainEvents(), now); err != nil {
			return err
		}
		return tx.Apply(plan)
	})
}
