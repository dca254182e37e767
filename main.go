package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"liaison-portal/internal/config"
	"liaison-portal/internal/db"
	"liaison-portal/internal/handlers"
	"liaison-portal/internal/logging"
	"liaison-portal/internal/middleware"
	"liaison-portal/internal/observability"
	"liaison-portal/internal/rabbitmq"
	"liaison-portal/internal/repositories"
	"liaison-portal/internal/stores"
	"liaison-portal/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracer shutdown failed", "error", err)
		}
	}()

	docs, closeDocs, err := openDocuments(ctx, cfg)
	if err != nil {
		slog.Error("failed to open document storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer closeDocs.Close()

	publisher := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	defer publisher.Close()
	slog.Info("audit publisher ready", "mode", rabbitmq.PublisherMode(publisher), "reason", rabbitmq.PublisherNoopReason(publisher))
	audit := telemetry.NewAuditEmitter(publisher, cfg.AuditRoutingKey, cfg.ServiceName, cfg.Env)

	groupStore := stores.NewGroupStore(docs)
	feedStore := stores.NewFeedStore(docs)
	meetingStore := stores.NewMeetingStore(docs)
	groupStore.Load(ctx)
	feedStore.Load(ctx)
	meetingStore.Load(ctx)

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, middleware.CleanupOpts{
		TTL:      10 * cfg.RateLimitWindow,
		Interval: cfg.RateLimitWindow,
	})
	defer limiter.Stop()

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// middlewares
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.RequestID())
	router.Use(observability.HTTPMetricsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": cfg.StorageDriver})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterDebugRoutes(router, audit, cfg.DebugRoutes)

	api := router.Group("", limiter.Middleware())
	handlers.RegisterRoutes(api, handlers.Handlers{
		Groups:     handlers.NewGroupHandler(groupStore, audit),
		Feed:       handlers.NewFeedHandler(feedStore, audit),
		Delegation: handlers.NewDelegationHandler(stores.NewDelegationStore()),
		Meetings:   handlers.NewMeetingHandler(meetingStore, audit),
		Minutes:    handlers.NewMinutesHandler(stores.NewMinutesStore()),
		Catalog:    handlers.NewCatalogHandler(stores.NewCatalog()),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("portal listening", "port", cfg.Port, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("server shutdown failed", "error", err)
	}
	slog.Info("portal stopped")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openDocuments builds the document repository for the configured driver.
func openDocuments(ctx context.Context, cfg config.Config) (repositories.DocumentRepository, io.Closer, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return repositories.NewMemoryDocumentRepo(), closerFunc(func() error { return nil }), nil
	case config.DriverPostgres:
		database, err := db.Connect(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewDocumentRepo(database), database, nil
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		repo := repositories.NewRedisDocumentRepo(client, cfg.RedisPrefix)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := repo.Ping(pingCtx); err != nil {
			_ = repo.Close()
			return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
		}
		return repo, repo, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
