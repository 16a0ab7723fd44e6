package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/get_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/list_products"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/create_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/delete_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/update_product"
)

func TestProductCreationFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID, err := createUC.Execute(ctx, create_product.Request{
		Name:          "MacBook Pro 14",
		Description:   "M3, 16GB",
		SKU:           "mbp14",
		SerialNumber:  " c02xk1jhg8wn ",
		StoreLocation: domain.LocationCarlton,
	})
	require.NoError(t, err)
	require.NotEmpty(t, productID)

	getQ := get_product.NewHandler(readModel)
	prod, err := getQ.Execute(ctx, productID)
	require.NoError(t, err)

	assert.Equal(t, "MacBook Pro 14", prod.Name)
	assert.Equal(t, "MBP14", prod.SKU)
	assert.Equal(t, "C02XK1JHG8WN", prod.SerialNumber)
	assert.Equal(t, string(domain.ProductStatusAvailable), prod.Status)
	assert.Nil(t, prod.CurrentRenterName)
	assert.Nil(t, prod.CurrentDueDate)

	events := mustFetchOutboxEvents(ctx, t, spClient, productID)
	require.Len(t, events, 1)
	assert.Equal(t, "product.created", events[0].EventType)
	assert.Equal(t, "pending", events[0].Status)
}

func TestDuplicateSerialRejected_CaseInsensitive(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := createUC.Execute(ctx, create_product.Request{
		Name:          "Keyboard A",
		SKU:           "KB100",
		SerialNumber:  "DUP-SER-001",
		StoreLocation: domain.LocationSydney,
	})
	require.NoError(t, err)

	// Same serial in different case and with padding must hit the index.
	_, err = createUC.Execute(ctx, create_product.Request{
		Name:          "Keyboard B",
		SKU:           "KB200",
		SerialNumber:  "  dup-ser-001  ",
		StoreLocation: domain.LocationMelbourne,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSerialNumber)
}

func TestConcurrentCreateWithSameSerial(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const workers = 4
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = createUC.Execute(ctx, create_product.Request{
				Name:          fmt.Sprintf("Race Unit %d", i),
				SKU:           "RACE01",
				SerialNumber:  "RACE-SER-001",
				StoreLocation: domain.LocationCarlton,
			})
		}(i)
	}
	wg.Wait()

	// Exactly one creation wins; the rest observe the committed index row.
	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domain.ErrDuplicateSerialNumber)
		}
	}
	assert.Equal(t, 1, winners)

	count := countSerialRows(ctx, t, "RACE-SER-001")
	assert.Equal(t, int64(1), count)
}

func TestUpdateReindexesChangedSerial(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID, err := createUC.Execute(ctx, create_product.Request{
		Name:          "Webcam",
		SKU:           "CAM01",
		SerialNumber:  "CAM-OLD-1",
		StoreLocation: domain.LocationBrisbane,
	})
	require.NoError(t, err)

	require.NoError(t, updateUC.Execute(ctx, update_product.Request{
		ProductID:       productID,
		Name:            "Webcam",
		SKU:             "CAM01",
		SerialNumber:    "CAM-NEW-1",
		OldSerialNumber: "CAM-OLD-1",
		StoreLocation:   domain.LocationBrisbane,
	}))

	assert.Equal(t, int64(0), countSerialRows(ctx, t, "CAM-OLD-1"))
	assert.Equal(t, int64(1), countSerialRows(ctx, t, "CAM-NEW-1"))

	// The freed serial can be claimed by a new product.
	_, err = createUC.Execute(ctx, create_product.Request{
		Name:          "Webcam Mk2",
		SKU:           "CAM02",
		SerialNumber:  "CAM-OLD-1",
		StoreLocation: domain.LocationBrisbane,
	})
	require.NoError(t, err)
}

func TestUpdateReplayedWithStaleOldSerial(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID, err := createUC.Execute(ctx, create_product.Request{
		Name:          "Monitor",
		SKU:           "MN01",
		SerialNumber:  "MN-OLD-1",
		StoreLocation: domain.LocationMelbourne,
	})
	require.NoError(t, err)

	req := update_product.Request{
		ProductID:       productID,
		Name:            "Monitor",
		SKU:             "MN01",
		SerialNumber:    "MN-NEW-1",
		OldSerialNumber: "MN-OLD-1",
		StoreLocation:   domain.LocationMelbourne,
	}
	require.NoError(t, updateUC.Execute(ctx, req))

	// A client retry replays the same request after the index has already
	// been re-keyed. The new serial row is its own, so the update succeeds
	// instead of tripping the uniqueness check or the index insert.
	require.NoError(t, updateUC.Execute(ctx, req))

	assert.Equal(t, int64(0), countSerialRows(ctx, t, "MN-OLD-1"))
	assert.Equal(t, int64(1), countSerialRows(ctx, t, "MN-NEW-1"))

	getQ := get_product.NewHandler(readModel)
	prod, err := getQ.Execute(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "MN-NEW-1", prod.SerialNumber)
}

func TestUpdateRejectsSerialOwnedByOther(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := createUC.Execute(ctx, create_product.Request{
		Name:          "Mouse A",
		SKU:           "MS123",
		SerialNumber:  "MOUSE-SER-A",
		StoreLocation: domain.LocationCarlton,
	})
	require.NoError(t, err)

	otherID, err := createUC.Execute(ctx, create_product.Request{
		Name:          "Mouse B",
		SKU:           "MS124",
		SerialNumber:  "MOUSE-SER-B",
		StoreLocation: domain.LocationCarlton,
	})
	require.NoError(t, err)

	err = updateUC.Execute(ctx, update_product.Request{
		ProductID:       otherID,
		Name:            "Mouse B",
		SKU:             "MS124",
		SerialNumber:    "MOUSE-SER-A",
		OldSerialNumber: "MOUSE-SER-B",
		StoreLocation:   domain.LocationCarlton,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSerialNumber)
}

func TestDeleteRemovesSerialIndexRow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productID, err := createUC.Execute(ctx, create_product.Request{
		Name:          "Headset",
		SKU:           "HS10",
		SerialNumber:  "HS-SER-1",
		StoreLocation: domain.LocationSydney,
	})
	require.NoError(t, err)

	require.NoError(t, deleteUC.Execute(ctx, delete_product.Request{
		ProductID:    productID,
		SerialNumber: "HS-SER-1",
	}))

	getQ := get_product.NewHandler(readModel)
	_, err = getQ.Execute(ctx, productID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Equal(t, int64(0), countSerialRows(ctx, t, "HS-SER-1"))

	// The serial is reusable immediately.
	_, err = createUC.Execute(ctx, create_product.Request{
		Name:          "Headset Mk2",
		SKU:           "HS20",
		SerialNumber:  "hs-ser-1",
		StoreLocation: domain.LocationSydney,
	})
	require.NoError(t, err)
}

func TestListProductsNewestFirst(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	firstID, err := createUC.Execute(ctx, create_product.Request{
		Name:          "List Item 1",
		SKU:           "LI01",
		SerialNumber:  "LIST-SER-1",
		StoreLocation: domain.LocationCarlton,
	})
	require.NoError(t, err)

	clk.Advance(time.Second)

	secondID, err := createUC.Execute(ctx, create_product.Request{
		Name:          "List Item 2",
		SKU:           "LI02",
		SerialNumber:  "LIST-SER-2",
		StoreLocation: domain.LocationCarlton,
	})
	require.NoError(t, err)

	listQ := list_products.NewHandler(readModel)
	items, err := listQ.Execute(ctx, 100, 0)
	require.NoError(t, err)

	posFirst, posSecond := -1, -1
	for i, it := range items {
		switch it.ProductID {
		case firstID:
			posFirst = i
		case secondID:
			posSecond = i
		}
	}
	require.GreaterOrEqual(t, posFirst, 0, "first product must be listed")
	require.GreaterOrEqual(t, posSecond, 0, "second product must be listed")
	assert.Less(t, posSecond, posFirst, "newest product comes first")
}

func countSerialRows(ctx context.Context, t *testing.T, serial string) int64 {
	t.Helper()
	stmt := spanner.Statement{
		SQL:    "SELECT COUNT(*) FROM serial_index WHERE serial_number = @serial",
		Params: map[string]interface{}{"serial": serial},
	}
	iter := spClient.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err)
	var n int64
	require.NoError(t, row.Columns(&n))
	_, err = iter.Next()
	require.Equal(t, iterator.Done, err)
	return n
}
