package delete_product

import (
	"context"

	contracts "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/contracts"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	shared "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/shared"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/clock"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// Request identifies the product to remove. SerialNumber selects the index
// row deleted alongside the product.
type Request struct {
	ProductID    string
	SerialNumber string
}

// Interactor removes a product and its serial index row in one atomic unit,
// leaving no orphaned index entry behind. Products with an open rental are
// rejected; the rental must be checked in first.
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
	serial := domain.NormalizeSerial(req.SerialNumber)

	return it.Tx.ReadWrite(ctx, func(ctx context.Context, tx *txn.Tx) error {
		product, err := it.Products.GetTx(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		if err := product.Delete(now); err != nil {
			return err
		}

		plan := txn.NewPlan()
		plan.Add(it.Serials.DeleteMut(serial))
		plan.Add(it.Products.DeleteMut(product.ID()))
		if err := shared.AddEventsToPlan(plan, it.Outbox, product.DomainEvents(), now); err != nil {
			return err
		}
		return tx.Apply(plan)
	})
}
