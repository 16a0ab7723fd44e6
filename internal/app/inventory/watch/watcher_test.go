package watch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
)

type fakeReadModel struct {
	mu       sync.Mutex
	products []*dto.ProductDTO
	open     []*dto.RentalDTO
	closed   []*dto.RentalDTO
}

func (f *fakeReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return nil, domain.ErrProductNotFound
}

func (f *fakeReadModel) ListProducts(ctx context.Context, limit, offset int) ([]*dto.ProductDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products, nil
}

func (f *fakeReadModel) ListRentals(ctx context.Context, status string, limit, offset int) ([]*dto.RentalDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if domain.RentalStatus(status) == domain.RentalStatusOpen {
		return f.open, nil
	}
	return f.closed, nil
}

func (f *fakeReadModel) FindOpenRentalID(ctx context.Context, productID string) (string, bool, error) {
	return "", false, nil
}

func (f *fakeReadModel) setProducts(products []*dto.ProductDTO) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = products
}

func TestWatcherDeliversInitialSnapshot(t *testing.T) {
	rm := &fakeReadModel{
		products: []*dto.ProductDTO{{ProductID: "prod_1", Name: "MacBook Pro"}},
	}
	w := New(rm, time.Hour, nil)

	sub := w.Subscribe(StreamProducts)
	defer sub.Unsubscribe()

	w.poll(context.Background())

	select {
	case snap := <-sub.C:
		assert.Equal(t, StreamProducts, snap.Stream)
		require.Len(t, snap.Products, 1)
		assert.Equal(t, "prod_1", snap.Products[0].ProductID)
	default:
		t.Fatal("expected initial snapshot")
	}
}

func TestWatcherSkipsUnchangedSnapshot(t *testing.T) {
	rm := &fakeReadModel{
		products: []*dto.ProductDTO{{ProductID: "prod_1", Name: "MacBook Pro"}},
	}
	w := New(rm, time.Hour, nil)

	sub := w.Subscribe(StreamProducts)
	defer sub.Unsubscribe()

	w.poll(context.Background())
	<-sub.C

	w.poll(context.Background())
	select {
	case <-sub.C:
		t.Fatal("unchanged result set must not be re-delivered")
	default:
	}
}

func TestWatcherDeliversOnChange(t *testing.T) {
	rm := &fakeReadModel{
		products: []*dto.ProductDTO{{ProductID: "prod_1", Name: "MacBook Pro"}},
	}
	w := New(rm, time.Hour, nil)

	sub := w.Subscribe(StreamProducts)
	defer sub.Unsubscribe()

	w.poll(context.Background())
	<-sub.C

	rm.setProducts([]*dto.ProductDTO{
		{ProductID: "prod_2", Name: "iPhone 15"},
		{ProductID: "prod_1", Name: "MacBook Pro"},
	})
	w.poll(context.Background())

	select {
	case snap := <-sub.C:
		require.Len(t, snap.Products, 2)
		assert.Equal(t, "prod_2", snap.Products[0].ProductID)
	default:
		t.Fatal("expected snapshot after change")
	}
}

func TestWatcherSlowConsumerGetsLatest(t *testing.T) {
	rm := &fakeReadModel{}
	w := New(rm, time.Hour, nil)

	sub := w.Subscribe(StreamProducts)
	defer sub.Unsubscribe()

	w.poll(context.Background())

	rm.setProducts([]*dto.ProductDTO{{ProductID: "prod_1"}})
	w.poll(context.Background())

	rm.setProducts([]*dto.ProductDTO{{ProductID: "prod_1"}, {ProductID: "prod_2"}})
	w.poll(context.Background())

	// Only the latest snapshot remains buffered.
	snap := <-sub.C
	require.Len(t, snap.Products, 2)
	select {
	case <-sub.C:
		t.Fatal("intermediate snapshots should have been replaced")
	default:
	}
}

func TestWatcherUnsubscribeStopsDelivery(t *testing.T) {
	rm := &fakeReadModel{
		products: []*dto.ProductDTO{{ProductID: "prod_1"}},
	}
	w := New(rm, time.Hour, nil)

	sub := w.Subscribe(StreamProducts)
	sub.Unsubscribe()

	assert.Empty(t, w.activeStreams())
	w.poll(context.Background())
	select {
	case <-sub.C:
		t.Fatal("unsubscribed channel must not receive")
	default:
	}
}

func TestWatcherSeparateStreams(t *testing.T) {
	due := "2026-09-05T00:00:00Z"
	rm := &fakeReadModel{
		open: []*dto.RentalDTO{{RentalID: "rent_1", ProductID: "prod_1", DueDate: due, Status: string(domain.RentalStatusOpen)}},
	}
	w := New(rm, time.Hour, nil)

	openSub := w.Subscribe(StreamOpenRentals)
	defer openSub.Unsubscribe()
	closedSub := w.Subscribe(StreamClosedRentals)
	defer closedSub.Unsubscribe()

	w.poll(context.Background())

	snap := <-openSub.C
	assert.Equal(t, StreamOpenRentals, snap.Stream)
	require.Len(t, snap.Rentals, 1)
	assert.Equal(t, "rent_1", snap.Rentals[0].RentalID)

	snap = <-closedSub.C
	assert.Equal(t, StreamClosedRentals, snap.Stream)
	assert.Empty(t, snap.Rentals)
}
