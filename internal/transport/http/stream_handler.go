package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/watch"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/logger"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/metrics"
)

// StreamHandler serves live result-set snapshots as server-sent events.
// Clients receive the current snapshot on connect and a fresh one whenever
// the underlying query result changes.
type StreamHandler struct {
	Watcher *watch.Watcher
}

// StreamProducts handles GET /api/stream/products.
func (h *StreamHandler) StreamProducts(c echo.Context) error {
	return h.stream(c, watch.StreamProducts)
}

// StreamOpenRentals handles GET /api/stream/rentals/open.
func (h *StreamHandler) StreamOpenRentals(c echo.Context) error {
	return h.stream(c, watch.StreamOpenRentals)
}

// StreamClosedRentals handles GET /api/stream/rentals/closed.
func (h *StreamHandler) StreamClosedRentals(c echo.Context) error {
	return h.stream(c, watch.StreamClosedRentals)
}

func (h *StreamHandler) stream(c echo.Context, stream watch.Stream) error {
	log := logger.FromEcho(c)

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	sub := h.Watcher.Subscribe(stream)
	defer sub.Unsubscribe()

	metrics.StreamSubscribersGauge.WithLabelValues(string(stream)).Inc()
	defer metrics.StreamSubscribersGauge.WithLabelValues(string(stream)).Dec()

	log.Info("stream opened", zap.String("stream", string(stream)))

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			log.Info("stream closed", zap.String("stream", string(stream)))
			return nil
		case snap := <-sub.C:
			payload, err := json.Marshal(snap)
			if err != nil {
				log.Error("snapshot encode failed", zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
