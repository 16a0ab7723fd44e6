package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// SerialIndex is the secondary index enforcing global serial number
// uniqueness. The store has no unique-constraint feature for this shape,
// so the index row doubles as the lock: the lookup and the insert must
// happen in the same transaction, which makes concurrent claims of one
// serial first-committer-wins.
//
// All methods take normalized serial numbers; callers normalize first.
type SerialIndex interface {
	// LookupTx reads the index row inside the transaction snapshot.
	// Returns the owning product id and whether the row exists.
	LookupTx(ctx context.Context, tx *txn.Tx, serialNumber string) (productID string, exists bool, err error)

	// InsertMut stages creation of the index row. The caller must have
	// confirmed non-existence via LookupTx in the same transaction.
	InsertMut(serialNumber, productID string, createdAt time.Time) *spanner.Mutation

	// DeleteMut stages deletion of the index row.
	DeleteMut(serialNumber string) *spanner.Mutation
}
