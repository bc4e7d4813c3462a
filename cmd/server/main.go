package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpAdapter "github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/http"
	natsAdapter "github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/messaging/nats"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/repository/cache"
	mongoRepo "github.com/Abdurahmanit/GroupProject/property-service/internal/adapter/repository/mongodb"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/config"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/tracer"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/usecase"

	"go.uber.org/zap"
)

func main() {
	// 1. Logger
	appLogger := logger.NewLogger()
	defer func() { _ = appLogger.Sync() }()

	// 2. Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal("Failed to load configuration", zap.Error(err))
	}
	appLogger.Info("Configuration loaded",
		zap.String("service_name", cfg.ServiceName),
		zap.String("http_port", cfg.HTTPPort),
		zap.Bool("redis_enabled", cfg.RedisAddress != ""),
		zap.Bool("nats_enabled", cfg.NATSURL != ""),
	)

	ctx := context.Background()

	// 3. Tracing
	tp, err := tracer.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	// 4. MongoDB
	mongoClient, err := mongoRepo.Connect(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		appLogger.Info("Disconnecting from MongoDB...")
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			appLogger.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	appLogger.Info("Successfully connected and pinged MongoDB")
	propertyRepo := mongoRepo.NewPropertyRepository(mongoClient.Database(cfg.MongoDatabase), appLogger)

	// 5. Redis (optional)
	var propertyCache domain.PropertyCache
	if cfg.RedisAddress != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
		} else {
			defer rdb.Close()
			propertyCache = cache.NewPropertyCache(rdb, cfg.CacheTTL, appLogger)
			appLogger.Info("Redis cache initialized", zap.String("address", cfg.RedisAddress))
		}
	}

	// 6. NATS (optional)
	var publisher domain.EventPublisher
	if cfg.NATSURL != "" {
		natsPublisher, err := natsAdapter.NewPublisher(cfg.NATSURL, cfg.NATSTimeout, appLogger)
		if err != nil {
			appLogger.Warn("NATS unavailable, property events disabled", zap.Error(err))
		} else {
			defer natsPublisher.Close()
			publisher = natsPublisher
		}
	}

	// 7. Use cases
	categories, err := usecase.LoadCategories(cfg.CategoriesFile, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load categories", zap.String("path", cfg.CategoriesFile), zap.Error(err))
	}
	categoryUsecase := usecase.NewCategoryUsecase(categories, appLogger)
	propertyUsecase := usecase.NewPropertyUsecase(propertyRepo, propertyCache, publisher, appLogger)

	// 8. HTTP
	metricsManager := metrics.NewMetricsManager("property_service")
	handler := httpAdapter.NewHandler(propertyUsecase, categoryUsecase, metricsManager, appLogger)
	router := httpAdapter.NewRouter(handler, httpAdapter.RouterConfig{
		AllowedOrigins:  cfg.AllowedOrigins(),
		MaxBodyBytes:    cfg.MaxBodyBytes,
		SubmitPerSecond: cfg.SubmitRate,
		SubmitBurst:     cfg.SubmitBurst,
	}, metricsManager, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	appLogger.Info("Application shutting down...")
}
