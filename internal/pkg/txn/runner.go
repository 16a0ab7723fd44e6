package txn

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrAborted indicates the store could not commit the transaction after its
// internal retries (contention or connectivity). Callers should treat it as
// a generic failure rather than a business-rule violation.
var ErrAborted = errors.New("transaction aborted")

// Tx is the handle usecases receive inside a read-write transaction.
// Reads observe a consistent snapshot; staged writes become visible
// all-at-once at commit, and the store aborts and re-runs the function
// when a row it read was modified concurrently. That isolation guarantee
// is what the uniqueness index and the booking state machine rely on.
type Tx struct {
	rw *spanner.ReadWriteTransaction
}

// ReadRow reads a single row by key within the transaction snapshot.
func (t *Tx) ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error) {
	return t.rw.ReadRow(ctx, table, key, columns)
}

// Apply stages the plan's mutations for the transaction commit.
func (t *Tx) Apply(plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	return t.rw.BufferWrite(plan.Mutations())
}

// Runner executes functions inside Spanner read-write transactions.
type Runner struct {
	client *spanner.Client
}

func NewRunner(client *spanner.Client) *Runner {
	return &Runner{client: client}
}

// ReadWrite runs fn inside one atomic read-write transaction.
// Errors returned by fn propagate unchanged; commit-level failures that
// survive the client's internal retry policy are wrapped as ErrAborted.
func (r *Runner) ReadWrite(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	if r.client == nil {
		return fmt.Errorf("txn: spanner client is nil")
	}

	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, rw *spanner.ReadWriteTransaction) error {
		return fn(ctx, &Tx{rw: rw})
	})
	if err == nil {
		return nil
	}

	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.Aborted, codes.Unavailable, codes.DeadlineExceeded:
			return fmt.Errorf("%w: %v", ErrAborted, err)
		}
	}
	return err
}
