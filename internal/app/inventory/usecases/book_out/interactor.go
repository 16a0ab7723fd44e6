package book_out

import (
	"context"
	"strings"
	"time"

	contracts "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/contracts"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	shared "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/shared"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/clock"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/ident"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// Request is the application-level book-out request.
type Request struct {
	ProductID  string
	StaffName  string
	RentalDate time.Time
	DueDate    time.Time
}

// Interactor lends an available product to a staff member. The product
// status transition and the rental insert commit atomically: a product is
// Rented iff exactly one open rental references it.
type Interactor struct {
	Products contracts.ProductRepo
	Rentals  contracts.RentalRepo
	Outbox   contracts.OutboxRepo
	Tx       contracts.Transactor
	Clock    clock.Clock
}

func NewInteractor(products contracts.ProductRepo, rentals contracts.RentalRepo, outbox contracts.OutboxRepo, tx contracts.Transactor, clk clock.Clock) *Interactor {
	return &Interactor{
		Products: products,
		Rentals:  rentals,
		Outbox:   outbox,
		Tx:       tx,
		Clock:    clk,
	}
}

// Execute opens a rental and returns its id.
// Fails with domain.ErrProductNotFound when the product is absent and
// domain.ErrProductNotAvailable when it is already out.
func (it *Interactor) Execute(ctx context.Context, req Request) (string, error) {
	now := it.Clock.Now()

	// Input validation happens before the transaction starts.
	if strings.TrimSpace(req.StaffName) == "" {
		return "", domain.ErrEmptyStaffName
	}
	if req.DueDate.Before(req.RentalDate) {
		return "", domain.ErrDueDateBeforeRentalDate
	}

	rentalID := ident.NewRentalID()

	err := it.Tx.ReadWrite(ctx, func(ctx context.Context, tx *txn.Tx) error {
		product, err := it.Products.GetTx(ctx, tx, req.ProductID)
		if err != nil {
			return err
		}

		// Snapshot the product fields before any mutation so rental history
		// stays readable after later edits or deletion.
		rental, err := domain.NewRental(rentalID, product, req.StaffName, req.RentalDate, req.DueDate, now)
		if err != nil {
			return err
		}

		if err := product.BookOut(req.StaffName, req.DueDate, now); err != nil {
			return err
		}

		plan := txn.NewPlan()
		plan.Add(it.Rentals.InsertMut(rental))
		plan.Add(it.Products.UpdateMut(product))
		if err := shared.AddEventsToPlan(plan, it.Outbox, rental.DomainEvents(), now); err != nil {
			return err
		}
		return tx.Apply(plan)
	})
	if err != nil {
		return "", err
	}

	return rentalID, nil
}
