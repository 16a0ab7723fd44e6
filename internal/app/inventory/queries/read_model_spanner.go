package queries

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/get_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/list_products"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/list_rentals"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/open_rental"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/metrics"
)

// SpannerReadModel is an infrastructure adapter that satisfies
// contracts.ReadModel. It composes the individual query implementations.
type SpannerReadModel struct {
	getQ     *get_product.SpannerGetProductQuery
	listQ    *list_products.SpannerListProductsQuery
	rentalsQ *list_rentals.SpannerListRentalsQuery
	openQ    *open_rental.SpannerOpenRentalQuery
}

func NewSpannerReadModel(client *spanner.Client) *SpannerReadModel {
	return &SpannerReadModel{
		getQ:     get_product.NewSpannerGetProductQuery(client),
		listQ:    list_products.NewSpannerListProductsQuery(client),
		rentalsQ: list_rentals.NewSpannerListRentalsQuery(client),
		openQ:    open_rental.NewSpannerOpenRentalQuery(client),
	}
}

func (rm *SpannerReadModel) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	defer metrics.TrackDBOperation("get_product")(time.Now())
	return rm.getQ.GetProduct(ctx, productID)
}

func (rm *SpannerReadModel) ListProducts(ctx context.Context, limit, offset int) ([]*dto.ProductDTO, error) {
	defer metrics.TrackDBOperation("list_products")(time.Now())
	return rm.listQ.ListProducts(ctx, limit, offset)
}

func (rm *SpannerReadModel) ListRentals(ctx context.Context, status string, limit, offset int) ([]*dto.RentalDTO, error) {
	defer metrics.TrackDBOperation("list_rentals")(time.Now())
	return rm.rentalsQ.ListRentals(ctx, status, limit, offset)
}

func (rm *SpannerReadModel) FindOpenRentalID(ctx context.Context, productID string) (string, bool, error) {
	defer metrics.TrackDBOperation("find_open_rental")(time.Now())
	return rm.openQ.FindOpenRentalID(ctx, productID)
}
