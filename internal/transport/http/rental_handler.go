package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/list_rentals"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/book_out"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/check_in"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/logger"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/metrics"
)

// RentalHandler exposes the booking protocol and rental queries over HTTP.
type RentalHandler struct {
	BookOut *book_out.Interactor
	CheckIn *check_in.Interactor
	List    *list_rentals.Handler
}

// BookOutProduct handles POST /api/rentals/book-out.
func (h *RentalHandler) BookOutProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	var req BookOutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	rentalDate, err := parseDate("rentalDate", req.RentalDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	dueDate, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	rentalID, err := h.BookOut.Execute(c.Request().Context(), book_out.Request{
		ProductID:  req.ProductID,
		StaffName:  req.StaffName,
		RentalDate: rentalDate,
		DueDate:    dueDate,
	})
	if err != nil {
		metrics.RecordInventoryOperation("book_out", "error")
		return writeError(c, err)
	}

	metrics.RecordInventoryOperation("book_out", "ok")
	log.Info("product booked out",
		zap.String("product_id", req.ProductID),
		zap.String("rental_id", rentalID),
		zap.String("staff_name", req.StaffName))
	return c.JSON(http.StatusCreated, echo.Map{"rentalId": rentalID})
}

// CheckInProduct handles POST /api/rentals/check-in.
func (h *RentalHandler) CheckInProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "productId is required"})
	}

	err := h.CheckIn.Execute(c.Request().Context(), check_in.Request{ProductID: req.ProductID})
	if err != nil {
		metrics.RecordInventoryOperation("check_in", "error")
		return writeError(c, err)
	}

	metrics.RecordInventoryOperation("check_in", "ok")
	log.Info("product checked in", zap.String("product_id", req.ProductID))
	return c.JSON(http.StatusOK, echo.Map{"message": "product checked in"})
}

// ListRentals handles GET /api/rentals. Status defaults to Open; open
// rentals come back soonest-due first, closed ones most recently returned
// first.
func (h *RentalHandler) ListRentals(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = string(domain.RentalStatusOpen)
	}
	if s := domain.RentalStatus(status); s != domain.RentalStatusOpen && s != domain.RentalStatusClosed {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be Open or Closed"})
	}

	limit, offset := pagination(c)

	rentals, err := h.List.Execute(c.Request().Context(), status, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	if rentals == nil {
		rentals = []*dto.RentalDTO{}
	}
	return c.JSON(http.StatusOK, rentals)
}
