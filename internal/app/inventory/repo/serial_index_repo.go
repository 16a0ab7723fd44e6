package repo

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/JasonRenBang/staff-rental-service/internal/models/m_serial_index"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
)

// SerialIndexRepo maintains the serial_index table. It never touches the
// index outside a transaction: the lookup and the staged insert must share
// one snapshot for the uniqueness guarantee to hold.
type SerialIndexRepo struct{}

func NewSerialIndexRepo() *SerialIndexRepo {
	return &SerialIndexRepo{}
}

// LookupTx reads the index row for a normalized serial number within the
// transaction snapshot. Absence is not an error.
func (r *SerialIndexRepo) LookupTx(ctx context.Context, tx *txn.Tx, serialNumber string) (string, bool, error) {
	row, err := tx.ReadRow(ctx, m_serial_index.TableName, spanner.Key{serialNumber},
		[]string{m_serial_index.ColProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return "", false, nil
		}
		return "", false, err
	}

	var productID string
	if err := row.Columns(&productID); err != nil {
		return "", false, err
	}
	return productID, true, nil
}

// InsertMut stages creation of the index row for a normalized serial.
func (r *SerialIndexRepo) InsertMut(serialNumber, productID string, createdAt time.Time) *spanner.Mutation {
	return m_serial_index.InsertMutation(serialNumber, productID, createdAt.UTC())
}

// DeleteMut stages deletion of the index row for a normalized serial.
func (r *SerialIndexRepo) DeleteMut(serialNumber string) *spanner.Mutation {
	return m_serial_index.DeleteMutation(serialNumber)
}
