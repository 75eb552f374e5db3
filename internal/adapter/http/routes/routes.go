package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "pcbuild_configurator/docs" // swag generated
	"pcbuild_configurator/internal/adapter/http/handlers"
	"pcbuild_configurator/internal/adapter/persistence/repository"
	appconfig "pcbuild_configurator/internal/infrastructure/config"
	"pcbuild_configurator/internal/infrastructure/database"
	"pcbuild_configurator/internal/infrastructure/observability"
	"pcbuild_configurator/internal/infrastructure/payments"
	"pcbuild_configurator/internal/infrastructure/remote"
	"pcbuild_configurator/internal/usecase"
	"pcbuild_configurator/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// App is the wired HTTP service.
type App struct {
	Router    *gin.Engine
	requestor usecase.ICompatibilityRequestor
	logger    *zap.Logger
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() error {
	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	app.Drain()
	return nil
}

// NewApp wires repositories, gateways, use cases and handlers into a router.
func NewApp(ctx context.Context, cfg appconfig.Config, logger *zap.Logger) (*App, error) {
	logger = observability.OrNop(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics()
	if err := metrics.Register(registry); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	sessions, err := newSessionRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := remote.NewClient(remote.Options{
		BaseURL: cfg.ConfigServiceURL,
		Timeout: cfg.RemoteTimeout,
		Logger:  logger.Named("remote"),
		Metrics: metrics,
	})
	if err != nil {
		return nil, err
	}

	gate, ok := usecase.ParseReviewGate(cfg.ReviewGate)
	if !ok {
		return nil, fmt.Errorf("unsupported review gate %q", cfg.ReviewGate)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured; checkout disabled", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	requestor := usecase.NewCompatibilityRequestor(usecase.CompatibilityRequestorDeps{
		Gateway:  client,
		Sessions: sessions,
		Timeout:  cfg.CompatCheckTimeout,
		Logger:   logger.Named("compatibility"),
		Metrics:  metrics,
	})
	store := usecase.NewConfigurationStore(usecase.ConfigurationStoreDeps{
		Sessions:   sessions,
		Remote:     client,
		Checker:    requestor,
		SessionTTL: cfg.SessionTTL,
		Logger:     logger.Named("configuration"),
		Metrics:    metrics,
	})
	workflow := usecase.NewWorkflowController(usecase.WorkflowControllerDeps{
		Sessions:   sessions,
		Store:      store,
		Gate:       gate,
		SessionTTL: cfg.SessionTTL,
		Logger:     logger.Named("workflow"),
	})
	catalog := usecase.NewCatalogClient(usecase.CatalogClientDeps{
		Gateway:  client,
		Sessions: sessions,
		Logger:   logger.Named("catalog"),
		Metrics:  metrics,
	})
	checkout := usecase.NewCheckoutUseCase(usecase.CheckoutUseCaseDeps{
		Sessions: sessions,
		Gateway:  paymentGateway,
		Gate:     gate,
		Logger:   logger.Named("checkout"),
	})

	router := gin.New()
	setMiddlewares(router, cfg, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	handlerLogger := logger.Named("http")
	buildHandler := handlers.NewBuildHandler(workflow, store, gate, handlerLogger)
	catalogHandler := handlers.NewCatalogHandler(catalog, gate, handlerLogger)
	checkoutHandler := handlers.NewCheckoutHandler(checkout, gate, cfg.MercadoPago.Mock, handlerLogger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBuildRoutes(v1, buildHandler, checkoutHandler)
	addCatalogRoutes(v1, catalogHandler)

	logger.Info("application wired",
		zap.String("session_store", cfg.SessionStore),
		zap.String("review_gate", string(gate)),
		zap.String("config_service_url", cfg.ConfigServiceURL),
		zap.Bool("checkout_enabled", paymentGateway != nil),
	)
	return &App{Router: router, requestor: requestor, logger: logger}, nil
}

// Drain waits for in-flight compatibility re-checks.
func (a *App) Drain() {
	a.logger.Info("draining compatibility re-checks")
	a.requestor.Wait()
}

func newSessionRepository(ctx context.Context, cfg appconfig.Config) (interfaces.ISessionRepository, error) {
	switch cfg.SessionStore {
	case appconfig.SessionStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return repository.NewSessionDynamoRepository(ddb, cfg.SessionsTable), nil
	case appconfig.SessionStoreMemory, "":
		return repository.NewSessionMemoryRepository(), nil
	}
	return nil, fmt.Errorf("unsupported session store %q", cfg.SessionStore)
}

func setMiddlewares(router *gin.Engine, cfg appconfig.Config, logger *zap.Logger) {
	router.Use(observability.Recovery(logger))
	router.Use(observability.RequestLogger(logger.Named("access")))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	c.MaxAge = 12 * time.Hour
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
