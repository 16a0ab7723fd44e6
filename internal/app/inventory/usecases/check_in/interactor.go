package check_in

import (
	"context"
	"errors"

	"go.uber.org/zap"

	contracts "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/contracts"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	shared "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/shared"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/clock"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// Request is the application-level check-in request.
type Request struct {
	ProductID string
}

// Interactor returns a rented product. Check-in is two-phase: the open
// rental is located by a one-shot query outside the transaction (the store
// cannot evaluate the query inside one), then the product re-read, the
// rental close and the status reset run in one atomic unit. The product
// state machine is authoritative: the status reset proceeds even when no
// open rental record is found.
type Interactor struct {
	Products  contracts.ProductRepo
	Rentals   contracts.RentalRepo
	Outbox    contracts.OutboxRepo
	ReadModel contracts.ReadModel
	Tx        contracts.Transactor
	Clock     clock.Clock
	Logger    *zap.Logger
}

func NewInteractor(products contracts.ProductRepo, rentals contracts.RentalRepo, outbox contracts.OutboxRepo, readModel contracts.ReadModel, tx contracts.Transactor, clk clock.Clock, log *zap.Logger) *Interactor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{
		Products:  products,
		Rentals:   rentals,
		Outbox:    outbox,
		ReadModel: readModel,
		Tx:        tx,
		Clock:     clk,
		Logger:    log,
	}
}

// Execute closes the product's open rental (when present) and resets the
// product to Available. Fails with domain.ErrProductNotCurrentlyRented when
// the product is not out, which also makes a second check-in of the same
// product fail cleanly.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	now := it.Clock.Now()

	// Phase (a): locate the open rental outside the transaction. A rental
	// closing concurrently between here and commit is tolerated.
	rentalID, found, err := it.ReadModel.FindOpenRentalID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	return it.Tx.ReadWrite(ctx, func(ctx context.Context, tx *txn.Tx) error {
		product, err := it.Products.GetTx(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		if err := product.CheckIn(now); err != nil {
			return err
		}

		plan := txn.NewPlan()

		if found {
			rental, err := it.Rentals.GetTx(ctx, tx, rentalID)
			if err != nil && !errors.Is(err, domain.ErrRentalNotFound) {
				return err
			}
			if rental != nil && rental.Status() == domain.RentalStatusOpen {
				if err := rental.Close(now); err != nil {
					return err
				}
				plan.Add(it.Rentals.UpdateMut(rental))
				if err := shared.AddEventsToPlan(plan, it.Outbox, rental.DomainEvents(), now); err != nil {
					return err
				}
			}
		} else {
			it.Logger.Warn("check-in without matching open rental; resetting product status anyway",
				zap.String("product_id", req.ProductID))
		}

		plan.Add(it.Products.UpdateMut(product))
		return tx.Apply(plan)
	})
}
