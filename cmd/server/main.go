package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/studiofin/studiofin/internal/adapter/http"
	"github.com/studiofin/studiofin/internal/adapter/http/handler"
	"github.com/studiofin/studiofin/internal/adapter/http/middleware"
	postgresRepo "github.com/studiofin/studiofin/internal/adapter/repository/postgres"
	redisRepo "github.com/studiofin/studiofin/internal/adapter/repository/redis"
	"github.com/studiofin/studiofin/internal/infrastructure/auth"
	"github.com/studiofin/studiofin/internal/infrastructure/config"
	"github.com/studiofin/studiofin/internal/infrastructure/logger"
	"github.com/studiofin/studiofin/internal/infrastructure/metrics"
	"github.com/studiofin/studiofin/internal/infrastructure/postgres"
	"github.com/studiofin/studiofin/internal/infrastructure/redis"
	"github.com/studiofin/studiofin/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply migrations
	if cfg.MigrationsPath != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	settingsRepo := postgresRepo.NewSettingsRepository(pool)
	fundRepo := postgresRepo.NewFundRepository(pool)
	participantRepo := postgresRepo.NewParticipantRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	jobRepo := postgresRepo.NewJobRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	clientRepo := postgresRepo.NewClientRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	workTypeRepo := postgresRepo.NewWorkTypeRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cache := redisRepo.NewCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	jobUC := usecase.NewJobUseCase(jobRepo, idGen)
	invoiceUC := usecase.NewInvoiceUseCase(txManager, invoiceRepo, jobRepo, idGen)
	settlementUC := usecase.NewSettlementUseCase(
		txManager, invoiceRepo, jobRepo, settingsRepo, fundRepo,
		participantRepo, balanceRepo, transactionRepo, clientRepo,
		categoryRepo, idGen, retrier,
	)
	cashflowUC := usecase.NewCashflowUseCase(txManager, transactionRepo, fundRepo, balanceRepo, participantRepo, idGen)
	adjustmentUC := usecase.NewAdjustmentUseCase(txManager, fundRepo, balanceRepo, participantRepo, settingsRepo)
	adminUC := usecase.NewAdminUseCase(settingsRepo, fundRepo, participantRepo, balanceRepo)
	referenceUC := usecase.NewReferenceUseCase(clientRepo, categoryRepo, workTypeRepo, idGen)
	dashboardUC := usecase.NewDashboardUseCase(transactionRepo, invoiceRepo, fundRepo, settingsRepo, balanceRepo, cache)

	// Initialize handlers
	businessMetrics := metrics.New()
	jobHandler := handler.NewJobHandler(jobUC)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUC, settlementUC, dashboardUC, businessMetrics)
	cashflowHandler := handler.NewCashflowHandler(cashflowUC, dashboardUC, businessMetrics)
	adminHandler := handler.NewAdminHandler(adminUC, adjustmentUC, dashboardUC)
	referenceHandler := handler.NewReferenceHandler(referenceUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled && cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		log.Info().Msg("authentication enabled")
	} else {
		log.Warn().Msg("authentication disabled")
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		JobHandler:       jobHandler,
		InvoiceHandler:   invoiceHandler,
		CashflowHandler:  cashflowHandler,
		AdminHandler:     adminHandler,
		ReferenceHandler: referenceHandler,
		DashboardHandler: dashboardHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		JWTManager:       jwtManager,
		Logging: middleware.NewLoggingMiddleware(logger.New(logger.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
		})),
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
