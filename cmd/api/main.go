package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/usecase/completion"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/scheduler"
	timeProvider "github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	tp := timeProvider.NewRealTimeProvider()

	if err := run(cfg, appLogger, tp); err != nil {
		appLogger.Error("Service stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	_ = appLogger.Flush()
}

func run(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	dbManager := database.NewManager(database.NewConfig(cfg.Database), appLogger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := migration.NewMigrationManager(db, appLogger, tp).MigrateAll(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}
	if cfg.Database.SeedData {
		if err := migration.SeedReferenceData(ctx, db, tp, appLogger); err != nil {
			return fmt.Errorf("seed reference data: %w", err)
		}
	}

	// Initialize repositories
	fundRepo := repository.NewFundRepository(db, appLogger)
	userRepo := repository.NewUserRepository(db, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize use cases
	lifecycleService := lifecycle.NewService(fundRepo, userRepo, transactionRepo, tp, appLogger)
	sweeper := completion.NewSweeper(transactionRepo, tp, appLogger, cfg.Scheduler.BatchSize)

	// Background completion sweep
	jobs := scheduler.New(appLogger, tp, cfg.Scheduler.JobTimeout)
	if cfg.Scheduler.Enabled {
		if err := jobs.AddJob(cfg.Scheduler.CompletionSchedule, scheduler.NewCompletionJob(sweeper, appLogger)); err != nil {
			return err
		}
		jobs.Start()
	}

	// Initialize API handlers
	retryPolicy := handler.DefaultRetryPolicy()
	retryPolicy.MaxRetries = cfg.Lifecycle.ConflictRetries
	retryPolicy.BaseDelay = cfg.Lifecycle.RetryBaseDelay
	retryPolicy.MaxDelay = cfg.Lifecycle.RetryMaxDelay
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleService, retryPolicy, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(router, lifecycleHandler)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := tp.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if cfg.Scheduler.Enabled {
		if err := jobs.Stop(shutdownCtx); err != nil {
			appLogger.Warn("Scheduler did not stop in time", map[string]any{
				"error": err.Error(),
			})
		}
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
