package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/hszk-dev/liveshows/internal/domain/model"
	"github.com/hszk-dev/liveshows/internal/domain/repository"
	"github.com/hszk-dev/liveshows/internal/infrastructure/cache"
	"github.com/hszk-dev/liveshows/internal/infrastructure/metrics"
)

// ShowService defines the interface for recorded show retrieval.
type ShowService interface {
	// GetShows returns the recorded shows.
	// privilegedBypass is true when an authenticated caller asked to skip the cache;
	// it is decided by the access-control layer, not here.
	GetShows(ctx context.Context, privilegedBypass bool) (*model.ShowList, error)
}

// ShowServiceConfig holds configuration for ShowService.
type ShowServiceConfig struct {
	// CacheKey is the fixed key the show list is cached under.
	CacheKey string
	// CacheTTL is the absolute lifetime of a cached show list.
	CacheTTL time.Duration
	// BypassRefreshesCache makes a bypass fetch replace the shared cache entry.
	// Off by default: bypass results are only returned to the caller that asked.
	BypassRefreshesCache bool
}

// DefaultShowServiceConfig returns the default configuration.
func DefaultShowServiceConfig() ShowServiceConfig {
	return ShowServiceConfig{
		CacheKey: "YouTubeShowsService",
		CacheTTL: 24 * time.Hour,
	}
}

type showService struct {
	source repository.ShowSource
	store  *cache.AsideStore
	now    func() time.Time
	logger *slog.Logger

	cacheKey             string
	cacheTTL             time.Duration
	bypassRefreshesCache bool
}

// NewShowService creates a new ShowService.
// A nil source means no upstream credential is configured and fallback data is served.
// now is the clock used for fallback data; nil means time.Now.
func NewShowService(
	source repository.ShowSource,
	store *cache.AsideStore,
	cfg ShowServiceConfig,
	now func() time.Time,
	logger *slog.Logger,
) ShowService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &showService{
		source:               source,
		store:                store,
		now:                  now,
		logger:               logger,
		cacheKey:             cfg.CacheKey,
		cacheTTL:             cfg.CacheTTL,
		bypassRefreshesCache: cfg.BypassRefreshesCache,
	}
}

// GetShows serves fallback data, a live fetch, or the cached list, in that order of precedence.
func (s *showService) GetShows(ctx context.Context, privilegedBypass bool) (*model.ShowList, error) {
	if s.source == nil {
		metrics.ShowRetrievalsTotal.WithLabelValues(metrics.RetrievalFallback).Inc()
		return &model.ShowList{Shows: FallbackShows(s.now())}, nil
	}

	if privilegedBypass {
		metrics.ShowRetrievalsTotal.WithLabelValues(metrics.RetrievalBypass).Inc()
		return s.fetchBypassingCache(ctx)
	}

	metrics.ShowRetrievalsTotal.WithLabelValues(metrics.RetrievalCached).Inc()
	return s.store.GetOrRefresh(ctx, s.cacheKey, s.cacheTTL, s.source.Fetch)
}

func (s *showService) fetchBypassingCache(ctx context.Context) (*model.ShowList, error) {
	list, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if s.bypassRefreshesCache {
		s.store.Store(ctx, s.cacheKey, s.cacheTTL, list)
	}

	s.logger.Info("served show list bypassing cache",
		"shows", list.Len(),
		"cache_refreshed", s.bypassRefreshesCache,
	)
	return list, nil
}
