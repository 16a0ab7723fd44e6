package list_rentals

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

func (h *Handler) Execute(ctx context.Context, status string, limit, offset int) ([]*dto.RentalDTO, error) {
	return h.readModel.ListRentals(ctx, status, limit, offset)
}
