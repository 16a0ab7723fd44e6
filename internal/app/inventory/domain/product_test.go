package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, now time.Time) *Product {
	t.Helper()
	p, err := NewProduct("prod_1", "MacBook Pro 14", "M3, 16GB", "mbp14", " c02xk1jhg8wn ", LocationCarlton, now)
	require.NoError(t, err)
	return p
}

func TestNewProductNormalizesAndStartsAvailable(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	p := newTestProduct(t, now)

	assert.Equal(t, "MBP14", p.SKU())
	assert.Equal(t, "C02XK1JHG8WN", p.SerialNumber())
	assert.Equal(t, ProductStatusAvailable, p.Status())
	assert.Nil(t, p.CurrentRenterName())
	assert.Nil(t, p.CurrentDueDate())
	assert.True(t, p.IsAvailable())

	require.Len(t, p.DomainEvents(), 1)
	assert.Equal(t, "product.created", p.DomainEvents()[0].EventType())
}

func TestNewProductValidation(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewProduct("prod_1", "  ", "", "MBP14", "SN1", LocationCarlton, now)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct("prod_1", "MacBook", "", "a", "SN1", LocationCarlton, now)
	assert.ErrorIs(t, err, ErrInvalidSKU)

	_, err = NewProduct("prod_1", "MacBook", "", "MBP14", "   ", LocationCarlton, now)
	assert.ErrorIs(t, err, ErrEmptySerialNumber)

	_, err = NewProduct("prod_1", "MacBook", "", "MBP14", "SN1", "PER", now)
	assert.ErrorIs(t, err, ErrInvalidStoreLocation)
}

func TestBookOutTransitionsToRented(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	due := now.Add(72 * time.Hour)
	p := newTestProduct(t, now)

	require.NoError(t, p.BookOut("  Alex Chen  ", due, now))

	assert.Equal(t, ProductStatusRented, p.Status())
	require.NotNil(t, p.CurrentRenterName())
	assert.Equal(t, "Alex Chen", *p.CurrentRenterName())
	require.NotNil(t, p.CurrentDueDate())
	assert.Equal(t, due, *p.CurrentDueDate())
	assert.False(t, p.IsAvailable())

	assert.True(t, p.Changes().Dirty(FieldStatus))
	assert.True(t, p.Changes().Dirty(FieldRenterName))
	assert.True(t, p.Changes().Dirty(FieldDueDate))
}

func TestBookOutRejectsRentedProduct(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)
	require.NoError(t, p.BookOut("Alex", now.Add(time.Hour), now))

	err := p.BookOut("Sam", now.Add(2*time.Hour), now)
	assert.ErrorIs(t, err, ErrProductNotAvailable)
}

func TestCheckInResetsProduct(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)
	require.NoError(t, p.BookOut("Alex", now.Add(time.Hour), now))

	later := now.Add(30 * time.Minute)
	require.NoError(t, p.CheckIn(later))

	assert.Equal(t, ProductStatusAvailable, p.Status())
	assert.Nil(t, p.CurrentRenterName())
	assert.Nil(t, p.CurrentDueDate())
	assert.Equal(t, later, p.UpdatedAt())
}

func TestCheckInRejectsAvailableProduct(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)

	assert.ErrorIs(t, p.CheckIn(now), ErrProductNotCurrentlyRented)
}

func TestDeleteRejectsRentedProduct(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)
	require.NoError(t, p.BookOut("Alex", now.Add(time.Hour), now))

	assert.ErrorIs(t, p.Delete(now), ErrProductCurrentlyRented)
}

func TestDeleteEmitsEvent(t *testing.T) {
	now := time.Now().UTC()
	p := newTestProduct(t, now)
	p.ClearEvents()

	require.NoError(t, p.Delete(now))
	require.Len(t, p.DomainEvents(), 1)
	assert.Equal(t, "product.deleted", p.DomainEvents()[0].EventType())
}

func TestUpdateDetailsTracksChangedFields(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	p := newTestProduct(t, now)
	p.ClearEvents()

	later := now.Add(time.Hour)
	require.NoError(t, p.UpdateDetails("MacBook Pro 14", "M3, 16GB", "MBP14", "NEW-SERIAL", LocationSydney, later))

	assert.Equal(t, "NEW-SERIAL", p.SerialNumber())
	assert.Equal(t, LocationSydney, p.StoreLocation())
	assert.True(t, p.Changes().Dirty(FieldSerialNumber))
	assert.True(t, p.Changes().Dirty(FieldStoreLocation))
	assert.False(t, p.Changes().Dirty(FieldName))
	assert.Equal(t, later, p.UpdatedAt())

	require.Len(t, p.DomainEvents(), 1)
	assert.Equal(t, "product.updated", p.DomainEvents()[0].EventType())
}

func TestUpdateDetailsNoopLeavesTimestamp(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	p := newTestProduct(t, now)
	p.ClearEvents()

	require.NoError(t, p.UpdateDetails("MacBook Pro 14", "M3, 16GB", "mbp14", "c02xk1jhg8wn", LocationCarlton, now.Add(time.Hour)))

	assert.False(t, p.Changes().HasChanges())
	assert.Empty(t, p.DomainEvents())
	assert.Equal(t, now, p.UpdatedAt())
}
