package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/adapters/handler"
	"github.com/DanielPopoola/freshdairy-checkout/internal/adapters/memory"
	"github.com/DanielPopoola/freshdairy-checkout/internal/adapters/middleware"
	"github.com/DanielPopoola/freshdairy-checkout/internal/adapters/postgres"
	"github.com/DanielPopoola/freshdairy-checkout/internal/adapters/razorpay"
	"github.com/DanielPopoola/freshdairy-checkout/internal/api"
	"github.com/DanielPopoola/freshdairy-checkout/internal/config"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/service"
	"github.com/DanielPopoola/freshdairy-checkout/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"database", cfg.Database.Enabled,
	)

	ctx := context.Background()
	checks := map[string]handler.HealthCheck{}

	var ledger ports.OrderLedger
	if cfg.Database.Enabled {
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			logger.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}

		ledger = postgres.NewOrderLedger(db)
		checks["database"] = db.Ping
	} else {
		logger.Warn("database disabled, orders are kept in memory")
		ledger = memory.NewOrderLedger()
	}

	providerClient := razorpay.NewClient(cfg.Razorpay)
	retryProvider := razorpay.NewRetryClient(providerClient, cfg.Retry)

	orderService := service.NewOrderService(retryProvider, ledger, logger)
	verifyService := service.NewVerificationService(cfg.Razorpay.KeySecret, ledger, logger)
	queryService := service.NewOrderQueryService(ledger)

	h := handler.NewCheckoutHandler(
		orderService,
		verifyService,
		queryService,
		handler.PublicConfig{KeyID: cfg.Razorpay.KeyID, Currency: cfg.Checkout.Currency},
		logger,
	)

	if err := api.RegisterDocs(); err != nil {
		logger.Error("failed to register api docs", "error", err)
		os.Exit(1)
	}
	swagger, err := api.GetSwagger()
	if err != nil {
		logger.Error("failed to load openapi contract", "error", err)
		os.Exit(1)
	}
	validate, err := middleware.OpenAPIValidator(swagger, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	handler.RegisterOpsRoutes(mux, checks)
	api.RegisterDocsRoutes(mux)

	// Metrics reads the matched pattern, so it sits directly on the mux.
	router := middleware.Metrics(mux)
	router = validate(router)
	router = middleware.Recovery(logger)(router)
	router = middleware.Logging(logger)(router)
	router = middleware.Timeout(cfg.Server.HandlerTimeout)(router)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if cfg.Worker.Enabled {
		reconciler := worker.NewReconciler(
			ledger,
			retryProvider,
			cfg.Worker.Interval,
			cfg.Worker.BatchSize,
			cfg.Worker.MinAge,
			logger,
		)
		go reconciler.Start(workerCtx)
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
