package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JasonRenBang/staff-rental-service/internal/pkg/logger"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Products *ProductHandler
	Rentals  *RentalHandler
	Streams  *StreamHandler
}

// NewRouter builds the echo instance with middleware and all routes
// registered.
func NewRouter(h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(MetricsMiddleware)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.GET("/products", h.Products.ListProducts)
	api.POST("/products", h.Products.CreateProduct)
	api.GET("/products/:id", h.Products.GetProduct)
	api.PUT("/products/:id", h.Products.UpdateProduct)
	api.DELETE("/products/:id", h.Products.DeleteProduct)

	api.GET("/rentals", h.Rentals.ListRentals)
	api.POST("/rentals/book-out", h.Rentals.BookOutProduct)
	api.POST("/rentals/check-in", h.Rentals.CheckInProduct)

	api.GET("/stream/products", h.Streams.StreamProducts)
	api.GET("/stream/rentals/open", h.Streams.StreamOpenRentals)
	api.GET("/stream/rentals/closed", h.Streams.StreamClosedRentals)

	return e
}
