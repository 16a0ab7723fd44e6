package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/models/m_rental"
)

func openTestRental(t *testing.T, now time.Time) *domain.Rental {
	t.Helper()
	p, err := domain.NewProduct("prod_1", "MacBook Pro 14", "", "MBP14", "SN-1", domain.LocationCarlton, now)
	require.NoError(t, err)
	r, err := domain.NewRental("rent_1", p, "Alex Chen", now, now.Add(72*time.Hour), now)
	require.NoError(t, err)
	return r
}

// TestRentalInsertMut verifies the insert map carries the product snapshot
// and leaves return_date NULL.
func TestRentalInsertMut(t *testing.T) {
	repo := NewRentalRepo()
	now := time.Now().UTC()
	r := openTestRental(t, now)

	values := buildRentalInsertValues(r)
	require.NotNil(t, values)

	assert.Equal(t, "rent_1", values[m_rental.ColRentalID])
	assert.Equal(t, "prod_1", values[m_rental.ColProductID])
	assert.Equal(t, "MacBook Pro 14", values[m_rental.ColProductName])
	assert.Equal(t, "MBP14", values[m_rental.ColProductSKU])
	assert.Equal(t, "SN-1", values[m_rental.ColProductSerialNumber])
	assert.Equal(t, string(domain.RentalStatusOpen), values[m_rental.ColStatus])

	v, ok := values[m_rental.ColReturnDate]
	require.True(t, ok, "expected key %s in insert map", m_rental.ColReturnDate)
	assert.Nil(t, v)

	require.NotNil(t, repo.InsertMut(r))
}

// TestRentalUpdateMut_OpenRental verifies no mutation is built for an
// untouched rental.
func TestRentalUpdateMut_OpenRental(t *testing.T) {
	repo := NewRentalRepo()
	now := time.Now().UTC()
	r := openTestRental(t, now)

	assert.Nil(t, repo.UpdateMut(r))
}

// TestRentalUpdateMut_AfterClose verifies the close produces a mutation.
func TestRentalUpdateMut_AfterClose(t *testing.T) {
	repo := NewRentalRepo()
	now := time.Now().UTC()
	r := openTestRental(t, now)

	require.NoError(t, r.Close(now.Add(48*time.Hour)))

	mut := repo.UpdateMut(r)
	require.NotNil(t, mut)
	assert.True(t, r.Changes().Dirty(domain.FieldRentalStatus))
	assert.True(t, r.Changes().Dirty(domain.FieldReturnDate))
}
