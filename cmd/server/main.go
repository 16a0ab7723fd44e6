package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/get_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/list_products"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/queries/list_rentals"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/repo"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/book_out"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/check_in"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/create_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/delete_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/usecases/update_product"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/watch"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/clock"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/config"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/logger"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/metrics"
	"github.com/JasonRenBang/staff-rental-service/internal/pkg/txn"
	transporthttp "github.com/JasonRenBang/staff-rental-service/internal/transport/http"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Init(&logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zlog := logger.Get()
	defer zlog.Sync()

	metrics.InitMetrics("staff_rental")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		zlog.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		zlog.Fatal("spanner client", zap.Error(err))
	}
	defer client.Close()

	clk := clock.RealClock{}
	products := repo.NewProductRepo()
	serials := repo.NewSerialIndexRepo()
	rentals := repo.NewRentalRepo()
	outbox := repo.NewOutboxRepo()
	runner := txn.NewRunner(client)
	readModel := queries.NewSpannerReadModel(client)

	watcher := watch.New(readModel, cfg.Watch.Interval, zlog.Named("watch"))
	go watcher.Run(ctx)

	router := transporthttp.NewRouter(transporthttp.Handlers{
		Products: &transporthttp.ProductHandler{
			Create: create_product.NewInteractor(products, serials, outbox, runner, clk),
			Update: update_product.NewInteractor(products, serials, outbox, runner, clk),
			Delete: delete_product.NewInteractor(products, serials, outbox, runner, clk),
			Get:    get_product.NewHandler(readModel),
			List:   list_products.NewHandler(readModel),
		},
		Rentals: &transporthttp.RentalHandler{
			BookOut: book_out.NewInteractor(products, rentals, outbox, runner, clk),
			CheckIn: check_in.NewInteractor(products, rentals, outbox, readModel, runner, clk, zlog.Named("check_in")),
			List:    list_rentals.NewHandler(readModel),
		},
		Streams: &transporthttp.StreamHandler{Watcher: watcher},
	})

	go func() {
		addr := ":" + cfg.Server.Port
		zlog.Info("http server listening", zap.String("addr", addr))
		if err := router.Start(addr); err != nil {
			zlog.Info("http server stopped", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("http shutdown", zap.Error(err))
	}

	zlog.Info("server stopped")
}
