package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/liveshows/internal/api/handler"
	"github.com/hszk-dev/liveshows/internal/api/middleware"
	"github.com/hszk-dev/liveshows/internal/config"
	"github.com/hszk-dev/liveshows/internal/domain/repository"
	"github.com/hszk-dev/liveshows/internal/infrastructure/cache"
	"github.com/hszk-dev/liveshows/internal/infrastructure/metrics"
	"github.com/hszk-dev/liveshows/internal/infrastructure/queue"
	"github.com/hszk-dev/liveshows/internal/infrastructure/youtube"
	"github.com/hszk-dev/liveshows/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Telemetry sinks
	trackers := repository.MultiTracker{metrics.DependencyTracker{}}
	if cfg.Telemetry.AMQPEnabled {
		publisher, err := queue.NewDependencyPublisher(queue.DefaultClientConfig(cfg.RabbitMQ.URL()), logger)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		stopTelemetry := startTelemetry(ctx, publisher, logger)
		defer stopTelemetry()
		trackers = append(trackers, publisher)
		logger.Info("connected to RabbitMQ, exporting dependency telemetry")
	}

	// A nil source selects fallback data.
	var source repository.ShowSource
	if cfg.YouTube.Configured() {
		ytCfg := youtube.DefaultRetrieverConfig(cfg.YouTube.APIKey, cfg.YouTube.PlaylistID)
		ytCfg.BaseURL = cfg.YouTube.BaseURL
		ytCfg.ApplicationName = cfg.YouTube.ApplicationName
		ytCfg.Timeout = cfg.YouTube.Timeout
		if cfg.YouTube.SkipMalformedItems {
			ytCfg.ItemErrorPolicy = youtube.ItemErrorSkip
		}
		source = youtube.NewRetriever(ytCfg, trackers, logger)
	} else {
		logger.Warn("YOUTUBE_API_KEY not set, serving fallback shows")
	}

	var backend cache.ShowListCache
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("connected to Redis")
		backend = cache.NewRedisShowListCache(redisClient)
	default:
		backend = cache.NewMemoryShowListCache(nil)
	}

	store := cache.NewAsideStore(backend, cache.AsideConfig{Coalesce: cfg.Cache.CoalesceRefresh}, logger)
	showSvc := usecase.NewShowService(source, store, usecase.ShowServiceConfig{
		CacheKey:             usecase.DefaultShowServiceConfig().CacheKey,
		CacheTTL:             cfg.Cache.TTL,
		BypassRefreshesCache: cfg.Cache.BypassRefreshes,
	}, nil, logger)

	r := setupRouter(logger, cfg.Auth.AdminTokens, handler.NewShowHandler(showSvc, logger))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.Int("port", cfg.Server.Port),
			slog.String("cache_backend", cfg.Cache.Backend),
			slog.Bool("fallback", source == nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

type telemetryExporter interface {
	Run(ctx context.Context) error
	Close() error
}

// startTelemetry runs the exporter in the background. The returned stop func
// waits for Run to return before closing, so no publish races the close.
func startTelemetry(ctx context.Context, exp telemetryExporter, logger *slog.Logger) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = exp.Run(ctx)
	}()

	return func() {
		cancel()
		<-done
		if err := exp.Close(); err != nil {
			logger.Warn("failed to close telemetry publisher", slog.String("error", err.Error()))
		}
	}
}

func setupRouter(logger *slog.Logger, adminTokens []string, showHandler *handler.ShowHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.AdminAuth(adminTokens))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Get("/ping", handler.Ping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/shows", showHandler.List)
	})

	return r
}
