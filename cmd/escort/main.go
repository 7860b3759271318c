package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/circuitbreaker"
	"github.com/piresc/lastmile/internal/pkg/config"
	"github.com/piresc/lastmile/internal/pkg/database"
	"github.com/piresc/lastmile/internal/pkg/health"
	httppkg "github.com/piresc/lastmile/internal/pkg/http"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/middleware"
	natspkg "github.com/piresc/lastmile/internal/pkg/nats"
	nrpkg "github.com/piresc/lastmile/internal/pkg/newrelic"
	"github.com/piresc/lastmile/internal/pkg/retry"
	"github.com/piresc/lastmile/internal/pkg/server"
	"github.com/piresc/lastmile/internal/pkg/stops"
	wspkg "github.com/piresc/lastmile/internal/pkg/websocket"
	guidanceGateway "github.com/piresc/lastmile/services/guidance/gateway"
	guidanceHTTP "github.com/piresc/lastmile/services/guidance/handler/http"
	guidanceUsecase "github.com/piresc/lastmile/services/guidance/usecase"
	intentsHTTP "github.com/piresc/lastmile/services/intents/handler/http"
	intentsRepository "github.com/piresc/lastmile/services/intents/repository"
	intentsUsecase "github.com/piresc/lastmile/services/intents/usecase"
	matchHTTP "github.com/piresc/lastmile/services/match/handler/http"
	matchRepository "github.com/piresc/lastmile/services/match/repository"
	matchUsecase "github.com/piresc/lastmile/services/match/usecase"
	"github.com/piresc/lastmile/services/sessions"
	sessionsGateway "github.com/piresc/lastmile/services/sessions/gateway"
	sessionsHTTP "github.com/piresc/lastmile/services/sessions/handler/http"
	sessionsWS "github.com/piresc/lastmile/services/sessions/handler/websocket"
	sessionsRepository "github.com/piresc/lastmile/services/sessions/repository"
	sessionsUsecase "github.com/piresc/lastmile/services/sessions/usecase"
	"github.com/piresc/lastmile/services/updates"
	updatesGateway "github.com/piresc/lastmile/services/updates/gateway"
	updatesNATS "github.com/piresc/lastmile/services/updates/handler/nats"
	updatesWS "github.com/piresc/lastmile/services/updates/handler/websocket"
	updatesUsecase "github.com/piresc/lastmile/services/updates/usecase"
	"go.uber.org/zap"
)

const hubQueueSize = 64

func main() {
	appName := "escort-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/escort.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NATS. Without it updates are delivered to this instance only.
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		natsClient, err = natspkg.NewClient(configs.NATS.URL)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
	}

	stopCatalog, err := stops.Load(configs.Stops.FilePath)
	if err != nil {
		zapLogger.Fatal("Failed to load stop catalog", zap.Error(err))
	}
	zapLogger.Info("Stop catalog loaded", zap.Int("stops", stopCatalog.Len()))

	// Updates fanout
	hub := wspkg.NewHub(hubQueueSize)
	var updatesGW updates.UpdatesGW
	if natsClient != nil {
		updatesGW = updatesGateway.NewUpdatesGW(natsClient)
	}
	updatesUC := updatesUsecase.NewUpdatesUC(hub, updatesGW)

	var updatesConsumer *updatesNATS.UpdatesHandler
	if natsClient != nil {
		updatesConsumer = updatesNATS.NewUpdatesHandler(updatesUC, natsClient)
		if err := updatesConsumer.InitNATSConsumers(); err != nil {
			zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
		}
	}

	// Repositories
	db := postgresClient.GetDB()
	intentRepo := intentsRepository.NewIntentRepository(db)
	matchRepo := matchRepository.NewMatchRepository(db)
	sessionRepo := sessionsRepository.NewSessionRepository(db)
	locationRepo := sessionsRepository.NewLocationRepository(redisClient, configs.Location.TTL)

	// Gateways
	var sosGW sessions.SOSGW
	if natsClient != nil {
		sosGW = sessionsGateway.NewSOSGW(natsClient)
	}
	osrmClient := httppkg.NewEnhancedClient("osrm", configs.OSRM.Timeout, retry.DefaultConfig(), circuitbreaker.DefaultConfig("osrm"))
	directionsGW := guidanceGateway.NewOSRMGW(osrmClient, configs.OSRM.BaseURL)

	// Use cases
	intentUC := intentsUsecase.NewIntentUC(configs, intentRepo, locationRepo, updatesUC)
	matchUC := matchUsecase.NewMatchUC(configs, matchRepo, stopCatalog)
	sessionUC := sessionsUsecase.NewSessionUC(configs, sessionRepo, locationRepo, intentUC, updatesUC, sosGW)
	guidanceUC := guidanceUsecase.NewGuidanceUC(stopCatalog, directionsGW)

	// Handlers
	manager := wspkg.NewManager(configs.JWT)
	intentHandler := intentsHTTP.NewIntentHandler(intentUC)
	matchHandler := matchHTTP.NewMatchHandler(matchUC, intentUC)
	sessionHandler := sessionsHTTP.NewSessionHandler(sessionUC)
	guidanceHandler := guidanceHTTP.NewGuidanceHandler(guidanceUC)
	updatesChannel := updatesWS.NewUpdatesHandler(manager, hub)
	locationChannel := sessionsWS.NewLocationHandler(manager, sessionUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Health and metrics
	healthSvc := health.NewService(appName)
	healthSvc.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthSvc.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	if natsClient != nil {
		healthSvc.AddChecker("nats", health.CheckerFunc(func(context.Context) error {
			return natsClient.Ping()
		}))
	}
	healthSvc.AddChecker("osrm", health.CheckerFunc(func(context.Context) error {
		if osrmClient.BreakerState() == circuitbreaker.StateOpen {
			return fmt.Errorf("circuit open")
		}
		return nil
	}))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthSvc)
	metrics.Register(e)

	// Authenticated API
	api := e.Group("/api", middleware.JWTAuthMiddleware(configs.JWT))
	var mutating []echo.MiddlewareFunc
	if configs.Limiter.Enabled {
		mutating = append(mutating, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			Counter: redisClient,
			Scope:   "api",
			Limit:   configs.Limiter.Limit,
			Period:  configs.Limiter.Period,
		}))
	}
	intentHandler.RegisterRoutes(api, mutating...)
	matchHandler.RegisterRoutes(api)
	sessionHandler.RegisterRoutes(api, mutating...)
	guidanceHandler.RegisterRoutes(api)

	// Realtime channels authenticate on their own
	e.GET("/ws/updates", updatesChannel.HandleUpdates)
	e.GET("/ws/sessions/:sessionID", locationChannel.HandleLocation)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := sessionsUsecase.NewSweeper(sessionUC, configs.Sweeper.Interval, nrApp)
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sweeper.Run(ctx)
	}()

	srv := server.NewGracefulServer(e,
		fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	// Components shut down in reverse registration order
	if nrApp != nil {
		srv.OnShutdown(func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}
	srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	if natsClient != nil {
		srv.OnShutdown(func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}
	if updatesConsumer != nil {
		srv.OnShutdown(func(context.Context) error {
			updatesConsumer.Close()
			return nil
		})
	}
	// Registered last so the sweeper stops before its stores close
	srv.OnShutdown(func(shutdownCtx context.Context) error {
		stop()
		select {
		case <-sweeperDone:
			return nil
		case <-shutdownCtx.Done():
			return fmt.Errorf("sweeper did not stop: %w", shutdownCtx.Err())
		}
	})

	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}
	zapLogger.Info("Shutdown complete", zap.String("app", appName))
}
