package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/models/m_product"
)

// TestInsertMut_NewProduct verifies the insert map for a freshly created
// product.
func TestInsertMut_NewProduct(t *testing.T) {
	r := NewProductRepo()

	now := time.Now().UTC()
	p, err := domain.NewProduct("prod_insert", "MacBook Pro 14", "M3, 16GB", "mbp14", "c02xk1jhg8wn", domain.LocationCarlton, now)
	require.NoError(t, err)

	values := buildInsertValues(p)
	require.NotNil(t, values)

	assert.Equal(t, "prod_insert", values[m_product.ColProductID])
	assert.Equal(t, "MBP14", values[m_product.ColSKU])
	assert.Equal(t, "C02XK1JHG8WN", values[m_product.ColSerialNumber])
	assert.Equal(t, string(domain.ProductStatusAvailable), values[m_product.ColStatus])

	// Renter columns are always present and nil on insert: a new product
	// can never be rented.
	v, ok := values[m_product.ColCurrentRenterName]
	require.True(t, ok, "expected key %s in insert map", m_product.ColCurrentRenterName)
	assert.Nil(t, v)

	v, ok = values[m_product.ColCurrentDueDate]
	require.True(t, ok, "expected key %s in insert map", m_product.ColCurrentDueDate)
	assert.Nil(t, v)

	mut := r.InsertMut(p)
	require.NotNil(t, mut)
}

// TestInsertMut_EmptyDescription verifies an empty description is stored as
// NULL rather than an empty string.
func TestInsertMut_EmptyDescription(t *testing.T) {
	now := time.Now().UTC()
	p, err := domain.NewProduct("prod_nodesc", "Dell Monitor", "", "MON27", "SN-MON-1", domain.LocationSydney, now)
	require.NoError(t, err)

	values := buildInsertValues(p)

	v, ok := values[m_product.ColDescription]
	require.True(t, ok, "expected key %s in insert map", m_product.ColDescription)
	assert.Nil(t, v)
}

// TestUpdateMut_CleanAggregate verifies no mutation is built when nothing
// changed.
func TestUpdateMut_CleanAggregate(t *testing.T) {
	r := NewProductRepo()

	now := time.Now().UTC()
	p := domain.ReconstructProduct("prod_clean", "MacBook", "", "MBP14", "SN1", domain.LocationCarlton,
		domain.ProductStatusAvailable, nil, nil, now, now)

	assert.Nil(t, r.UpdateMut(p))
}

// TestUpdateMut_AfterBookOut verifies the update covers exactly the status
// and renter columns plus the timestamp.
func TestUpdateMut_AfterBookOut(t *testing.T) {
	r := NewProductRepo()

	now := time.Now().UTC()
	p := domain.ReconstructProduct("prod_rented", "MacBook", "", "MBP14", "SN1", domain.LocationCarlton,
		domain.ProductStatusAvailable, nil, nil, now, now)

	require.NoError(t, p.BookOut("Alex Chen", now.Add(72*time.Hour), now))

	mut := r.UpdateMut(p)
	require.NotNil(t, mut)

	assert.True(t, p.Changes().Dirty(domain.FieldStatus))
	assert.True(t, p.Changes().Dirty(domain.FieldRenterName))
	assert.True(t, p.Changes().Dirty(domain.FieldDueDate))
	assert.False(t, p.Changes().Dirty(domain.FieldName))
}

func TestDeleteMut(t *testing.T) {
	r := NewProductRepo()
	assert.NotNil(t, r.DeleteMut("prod_gone"))
}
