package list_products

import (
	"context"

	contracts "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/contracts"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
)

type Handler struct {
	readModel contracts.ReadModel
}

func NewHandler(r contracts.ReadModel) *Handler {
	return &Handler{readModel: r}
}

func (h *Handler) Execute(ctx context.Context, limit, offset int) ([]*dto.ProductDTO, error) {
	return h.readModel.ListProducts(ctx, limit, offset)
}
