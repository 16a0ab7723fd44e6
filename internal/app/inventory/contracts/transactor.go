package contracts

import (
	"context"

	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// Transactor runs a function inside one atomic read-write transaction.
// Reads performed through the Tx observe a consistent snapshot and the
// store re-runs fn on write conflict, so read-then-write sequences like
// the serial uniqueness check are race-free. Usecases depend on this
// interface rather than the Spanner client directly.
type Transactor interface {
	ReadWrite(ctx context.Context, fn func(ctx context.Context, tx *txn.Tx) error) error
}
