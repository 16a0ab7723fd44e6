package create_product

import (
	"context"

	contracts "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/contracts"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	shared "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/shared"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/clock"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/ident"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// Request is the application-level create-product request.
type Request struct {
	Name          string
	Description   string
	SKU           string
	SerialNumber  string
	StoreLocation string
}

// Interactor implements the create-product usecase. The serial uniqueness
// check and both inserts run inside one read-write transaction: either the
// index row and the product row both commit, or neither does.
type Interactor struct {
	Products contracts.ProductRepo
	Serials  contracts.SerialIndex
	Outbox   contracts.OutboxRepo
	Tx       contracts.Transactor
	Clock    clock.Clock
}

// NewInteractor constructs the interactor.
func NewInteractor(products contracts.ProductRepo, serials contracts.SerialIndex, outbox contracts.OutboxRepo, tx contracts.Transactor, clk clock.Clock) *Interactor {
	return &Interactor{
		Products: products,
		Serials:  serials,
		Outbox:   outbox,
		Tx:       tx,
		Clock:    clk,
	}
}

// Execute creates a new product in Available status.
// Returns domain.ErrDuplicateSerialNumber when the normalized serial number
// is already indexed; validation failures are returned before any store
// interaction.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	// Validation happens in the constructor, before the transaction starts.
	product, err := domain.NewProduct(ident.NewProductID(), req.Name, req.Description,
		req.SKU, req.SerialNumber, req.StoreLocation, now)
	if err != nil {
		return "", err
	}

	err = it.Tx.ReadWrite(ctx, func(ctx context.Context, tx *txn.Tx) error {
		// The lookup and the insert share one snapshot; a concurrent create
		// of the same serial makes exactly one of the two commits win.
		_, exists, err := it.Serials.LookupTx(ctx, tx, product.SerialNumber())
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateSerialNumber
		}

		plan := txn.NewPlan()
		plan.Add(it.Serials.InsertMut(product.SerialNumber(), product.ID(), now))
		plan.Add(it.Products.InsertMut(product))
		if err := shared.AddEventsToPlan(plan, it.Outbox, product.DomainEvents(), now); err != nil {
			return err
		}
		return tx.Apply(plan)
	})
	if err != nil {
		return "", err
	}

	return product.ID(), nil
}
