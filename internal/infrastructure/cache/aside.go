package cache

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hszk-dev/liveshows/internal/domain/model"
	"github.com/hszk-dev/liveshows/internal/infrastructure/metrics"
)

// RefreshFunc computes a fresh show list on a cache miss.
type RefreshFunc func(ctx context.Context) (*model.ShowList, error)

// AsideConfig holds configuration for AsideStore.
type AsideConfig struct {
	// Coalesce de-duplicates concurrent refreshes of the same key.
	// When false, concurrent misses each refresh and the last write wins.
	Coalesce bool
}

// AsideStore implements get-or-refresh on top of a ShowListCache.
type AsideStore struct {
	cache    ShowListCache
	coalesce bool
	sfGroup  singleflight.Group
	logger   *slog.Logger
}

// NewAsideStore creates an AsideStore over the given backend.
func NewAsideStore(backend ShowListCache, cfg AsideConfig, logger *slog.Logger) *AsideStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &AsideStore{
		cache:    backend,
		coalesce: cfg.Coalesce,
		logger:   logger,
	}
}

// GetOrRefresh returns the unexpired entry for key, or calls refresh and stores
// its result with an absolute expiration of now + ttl.
// A failed refresh is never cached and its error is returned as is.
func (s *AsideStore) GetOrRefresh(ctx context.Context, key string, ttl time.Duration, refresh RefreshFunc) (*model.ShowList, error) {
	list, err := s.cache.Get(ctx, key)
	if err != nil {
		// Log cache error but continue to upstream
		s.logger.Warn("cache get failed, refreshing from upstream",
			"key", key,
			"error", err,
		)
	}
	if list != nil {
		return list, nil // Cache hit
	}

	if !s.coalesce {
		return s.refreshAndStore(ctx, key, ttl, refresh)
	}

	// The shared refresh outlives any single caller's cancellation.
	sharedCtx := context.WithoutCancel(ctx)
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.refreshAndStore(sharedCtx, key, ttl, refresh)
	})
	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}
	if err != nil {
		return nil, err
	}
	return result.(*model.ShowList), nil
}

// Store replaces the entry for key without consulting it first.
// Write failures are logged and swallowed.
func (s *AsideStore) Store(ctx context.Context, key string, ttl time.Duration, list *model.ShowList) {
	if err := s.cache.Set(ctx, key, list, ttl); err != nil {
		s.logger.Warn("failed to cache show list",
			"key", key,
			"error", err,
		)
	}
}

// Invalidate removes the entry for key.
func (s *AsideStore) Invalidate(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, key)
}

func (s *AsideStore) refreshAndStore(ctx context.Context, key string, ttl time.Duration, refresh RefreshFunc) (*model.ShowList, error) {
	list, err := refresh(ctx)
	if err != nil {
		return nil, err
	}

	s.Store(ctx, key, ttl, list)
	return list, nil
}
