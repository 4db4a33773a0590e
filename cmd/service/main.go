package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "delivery-service/internal/app"
	"delivery-service/internal/handlers/rest/client_delete"
	"delivery-service/internal/handlers/rest/client_get"
	"delivery-service/internal/handlers/rest/client_post"
	"delivery-service/internal/handlers/rest/client_put"
	"delivery-service/internal/handlers/rest/clients_get"
	"delivery-service/internal/handlers/rest/deliveries_get"
	"delivery-service/internal/handlers/rest/delivery_cancel_put"
	"delivery-service/internal/handlers/rest/delivery_complete_put"
	"delivery-service/internal/handlers/rest/delivery_get"
	"delivery-service/internal/handlers/rest/delivery_post"
	"delivery-service/internal/handlers/rest/delivery_put"
	"delivery-service/internal/handlers/rest/healthcheck_head"
	"delivery-service/internal/handlers/rest/occurrences_get"
	"delivery-service/internal/handlers/rest/ping_get"
	"delivery-service/internal/pkg/config"
	"delivery-service/internal/pkg/dotenv"
	"delivery-service/internal/pkg/kafka"
	metrics_system "delivery-service/internal/pkg/metrics"
	"delivery-service/internal/pkg/middlewares/graceful_shutdown"
	"delivery-service/internal/pkg/middlewares/metrics"
	"delivery-service/internal/pkg/middlewares/rate_limiter"
	"delivery-service/internal/pkg/middlewares/timeout"
	"delivery-service/internal/pkg/postgres"
	"delivery-service/pkg/background"
	"delivery-service/pkg/logger"
	"delivery-service/pkg/logger/zap_adapter"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env читается до логгера: уровень логирования тоже может быть задан в нем
	loaded, err := dotenv.Load(dotenv.DefaultFile)
	if err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.LoadService()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-service application")
	if !loaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
		notificationDrain   = 10 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsAuto {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		err := producer.Close()
		if err != nil {
			runLog.Error("failed to close Kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	// письма, уже поставленные в очередь, дописываются и после SIGTERM
	notificationPool := background.NewPool(
		context.WithoutCancel(ctx),
		log,
		cfg.Notification.Workers,
		cfg.Notification.QueueSize,
	)
	// выполняется на любом выходе из run и раньше закрытия producer
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), notificationDrain)
		defer cancel()

		if err := notificationPool.Close(drainCtx); err != nil {
			runLog.Error("notification pool close error", logger.NewField("error", err))
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, notificationPool, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, rate_limiter.NewLimiter(cfg.RateLimiterQPS, cfg.RateLimiterBurst)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/clients", clients_get.New(log, app.ServiceClient)).Methods("GET")
	router.Handle("/clients", client_post.New(log, app.ServiceClient)).Methods("POST")
	router.Handle("/clients/{id}", client_get.New(log, app.ServiceClient)).Methods("GET")
	router.Handle("/clients/{id}", client_put.New(log, app.ServiceClient)).Methods("PUT")
	router.Handle("/clients/{id}", client_delete.New(log, app.ServiceClient)).Methods("DELETE")

	router.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/deliveries", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/deliveries/{id}", delivery_put.New(log, app.ServiceDelivery)).Methods("PUT")
	router.Handle("/deliveries/{id}/occurrences", occurrences_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/deliveries/{id}/complete", delivery_complete_put.New(log, app.ServiceCompletion)).Methods("PUT")
	router.Handle("/deliveries/{id}/cancel", delivery_cancel_put.New(log, app.ServiceCompletion)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
