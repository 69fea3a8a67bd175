package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wealthway/internal/config"
	"wealthway/internal/database"
	"wealthway/internal/handlers"
	"wealthway/internal/middleware"
	"wealthway/internal/repositories"
	"wealthway/internal/services"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err, "path", cfg.Database.Path)
		os.Exit(1)
	}

	blobStore := repositories.NewBlobRepository(db)
	metrics := services.NewPrometheusMetrics()

	ledger, err := services.NewLedgerService(blobStore, metrics)
	if err != nil {
		logger.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}

	generator := services.NewOpenAIGenerator(cfg.Advisor.APIKey, cfg.Advisor.BaseURL, cfg.Advisor.Model)
	advisor := services.NewAdvisorService(generator, metrics, cfg.Advisor.Timeout)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))

	transactionHandler := handlers.NewTransactionHandler(ledger)
	reportHandler := handlers.NewReportHandler(ledger)
	cycleHandler := handlers.NewCycleHandler(ledger)
	adviceHandler := handlers.NewAdviceHandler(ledger, advisor)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	api.GET("/reports/summary", reportHandler.GetSummary)
	api.GET("/reports/categories", reportHandler.GetCategoryBreakdown)
	api.GET("/cycle/current", cycleHandler.GetCurrentCycle)
	api.GET("/cycle/previous", cycleHandler.GetPreviousCycle)
	api.GET("/settings/cycle-start-day", cycleHandler.GetCycleStartDay)
	api.PUT("/settings/cycle-start-day", cycleHandler.UpdateCycleStartDay)
	api.GET("/categories", cycleHandler.ListCategories)

	if !cfg.IsProduction() {
		devHandler := handlers.NewDevHandler(services.NewSampleDataService(ledger))
		api.POST("/dev/seed", devHandler.SeedTransactions)
		logger.Info("Development seeding endpoint enabled")
	}

	api.POST("/advice", adviceHandler.GetAdvice)
	api.GET("/advice/latest", adviceHandler.GetLatestAdvice)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	address := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting wealthway server", "address", address, "environment", cfg.Server.Environment)
	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
