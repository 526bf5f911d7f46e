package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingapp "github.com/stayhub/backend/internal/application/booking"
	identityapp "github.com/stayhub/backend/internal/application/identity"
	inventoryapp "github.com/stayhub/backend/internal/application/inventory"
	vendorapp "github.com/stayhub/backend/internal/application/vendor"
	"github.com/stayhub/backend/internal/infrastructure/auth"
	"github.com/stayhub/backend/internal/infrastructure/cache"
	"github.com/stayhub/backend/internal/infrastructure/config"
	"github.com/stayhub/backend/internal/infrastructure/event"
	"github.com/stayhub/backend/internal/infrastructure/logger"
	"github.com/stayhub/backend/internal/infrastructure/payment"
	"github.com/stayhub/backend/internal/infrastructure/persistence"
	"github.com/stayhub/backend/internal/infrastructure/storage"
	"github.com/stayhub/backend/internal/infrastructure/telemetry"
	"github.com/stayhub/backend/internal/interfaces/http/handler"
	"github.com/stayhub/backend/internal/interfaces/http/middleware"
	"github.com/stayhub/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting stayhub backend",
		zap.String("version", version),
		zap.String("environment", cfg.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry
	var businessMetrics *telemetry.BusinessMetrics
	if cfg.Telemetry.Enabled {
		tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
		if err != nil {
			log.Fatal("failed to initialize tracing", zap.Error(err))
		}
		defer shutdownQuietly(log, "tracer", tracerProvider.Shutdown)

		meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
		if err != nil {
			log.Fatal("failed to initialize metrics", zap.Error(err))
		}
		defer shutdownQuietly(log, "meter", meterProvider.Shutdown)

		businessMetrics, err = telemetry.NewBusinessMetrics(meterProvider.Meter("stayhub"))
		if err != nil {
			log.Fatal("failed to create business metrics", zap.Error(err))
		}

		loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
		if err != nil {
			log.Fatal("failed to initialize log export", zap.Error(err))
		}
		defer shutdownQuietly(log, "log exporter", loggerProvider.Shutdown)
		log = loggerProvider.BridgeZap(log, cfg.Telemetry.ServiceName)

		if cfg.Telemetry.ProfilerEnabled {
			profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
			if err != nil {
				log.Warn("profiler disabled", zap.Error(err))
			} else {
				defer func() { _ = profiler.Stop() }()
			}
		}
	}

	// Database
	db, err := persistence.NewDatabase(cfg.Database, log, cfg.Telemetry.Enabled)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	// Repositories
	itemRepo := persistence.NewGormInventoryRepository(db)
	movementRepo := persistence.NewGormMovementRepository(db)
	bookingRepo := persistence.NewGormBookingRepository(db)
	orderRepo := persistence.NewGormVendorOrderRepository(db)
	userRepo := persistence.NewGormUserRepository(db)

	// Profile cache
	var profileCache cache.ProfileCache
	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisProfileCache(cfg.Redis)
		defer func() { _ = redisCache.Close() }()
		profileCache = redisCache
	} else {
		profileCache = cache.NewInMemoryProfileCache(cfg.Redis.TTL)
	}

	// Object storage
	var objectStorage storage.ObjectStorage
	if cfg.Storage.Provider == "s3" {
		objectStorage, err = storage.NewS3Storage(ctx, cfg.Storage)
	} else {
		objectStorage, err = storage.NewLocalStorage(cfg.Storage.LocalDir)
	}
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}

	gateway := payment.NewPaystackGateway(cfg.Payment)
	jwtManager := auth.NewJWTManager(cfg.Auth)

	// Event bus and handlers
	bus := event.NewInMemoryBus(log)
	bus.Subscribe(inventoryapp.NewLowStockAlertHandler(log))
	if err := bus.Start(ctx); err != nil {
		log.Fatal("failed to start event bus", zap.Error(err))
	}
	defer func() { _ = bus.Stop(context.Background()) }()

	// Application services
	inventoryService := inventoryapp.NewService(itemRepo, movementRepo, bus, businessMetrics, log)
	bookingService := bookingapp.NewService(bookingRepo, bus, businessMetrics, log)
	vendorService := vendorapp.NewService(orderRepo, gateway, bus, businessMetrics, log)
	identityService := identityapp.NewService(userRepo, jwtManager, profileCache, objectStorage, log)

	// HTTP
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.Server.AllowedOrigins

	engine := router.Setup(router.Config{
		Logger:          log,
		JWTManager:      jwtManager,
		ServiceName:     cfg.Telemetry.ServiceName,
		TracingEnabled:  cfg.Telemetry.Enabled,
		CORS:            corsCfg,
		System:          handler.NewSystemHandler(version),
		Auth:            handler.NewAuthHandler(identityService),
		Profile:         handler.NewProfileHandler(identityService),
		Inventory:       handler.NewInventoryHandler(inventoryService),
		Bookings:        handler.NewBookingHandler(bookingService),
		Orders:          handler.NewVendorOrderHandler(vendorService),
		PaymentCallback: handler.NewPaymentCallbackHandler(vendorService, gateway, log),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func shutdownQuietly(log *zap.Logger, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Warn("telemetry shutdown", zap.String("component", name), zap.Error(err))
	}
}
