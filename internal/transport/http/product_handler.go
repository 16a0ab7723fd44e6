package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/get_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/list_products"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/create_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/delete_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/update_product"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/logger"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/metrics"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// ProductHandler exposes the product commands and queries over HTTP.
type ProductHandler struct {
	Create *create_product.Interactor
	Update *update_product.Interactor
	Delete *delete_product.Interactor
	Get    *get_product.Handler
	List   *list_products.Handler
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	productID, err := h.Create.Execute(c.Request().Context(), create_product.Request{
		Name:          req.Name,
		Description:   req.Description,
		SKU:           req.SKU,
		SerialNumber:  req.SerialNumber,
		StoreLocation: req.StoreLocation,
	})
	if err != nil {
		metrics.RecordInventoryOperation("create_product", "error")
		return writeError(c, err)
	}

	metrics.RecordInventoryOperation("create_product", "ok")
	log.Info("product created",
		zap.String("product_id", productID),
		zap.String("sku", req.SKU))
	return c.JSON(http.StatusCreated, echo.Map{"id": productID})
}

// UpdateProduct handles PUT /api/products/:id.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	productID := c.Param("id")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	err := h.Update.Execute(c.Request().Context(), update_product.Request{
		ProductID:       productID,
		Name:            req.Name,
		Description:     req.Description,
		SKU:             req.SKU,
		SerialNumber:    req.SerialNumber,
		OldSerialNumber: req.OldSerialNumber,
		StoreLocation:   req.StoreLocation,
	})
	if err != nil {
		metrics.RecordInventoryOperation("update_product", "error")
		return writeError(c, err)
	}

	metrics.RecordInventoryOperation("update_product", "ok")
	log.Info("product updated", zap.String("product_id", productID))
	return c.JSON(http.StatusOK, echo.Map{"id": productID})
}

// DeleteProduct handles DELETE /api/products/:id. The serial number rides
// along as a query parameter so the index row can be removed in the same
// commit without an extra read.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	productID := c.Param("id")
	serial := c.QueryParam("serial_number")

	err := h.Delete.Execute(c.Request().Context(), delete_product.Request{
		ProductID:    productID,
		SerialNumber: serial,
	})
	if err != nil {
		metrics.RecordInventoryOperation("delete_product", "error")
		return writeError(c, err)
	}

	metrics.RecordInventoryOperation("delete_product", "ok")
	log.Info("product deleted", zap.String("product_id", productID))
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.Get.Execute(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// ListProducts handles GET /api/products, newest first.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	limit, offset := pagination(c)

	products, err := h.List.Execute(c.Request().Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	if products == nil {
		products = []*dto.ProductDTO{}
	}
	return c.JSON(http.StatusOK, products)
}

func pagination(c echo.Context) (limit, offset int) {
	limit = defaultListLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxListLimit {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
