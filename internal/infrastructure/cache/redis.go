package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/liveshows/internal/domain/model"
	"github.com/hszk-dev/liveshows/internal/infrastructure/metrics"
)

const (
	// showListCacheKeyPrefix is the prefix for show list cache keys in Redis.
	showListCacheKeyPrefix = "shows:"
)

// showListJSON is the JSON representation of a ShowList for caching.
// Using explicit struct avoids coupling to domain model's JSON tags.
type showListJSON struct {
	Shows        []showJSON `json:"shows"`
	MoreShowsURL string     `json:"more_shows_url,omitempty"`
}

type showJSON struct {
	Provider     string `json:"provider"`
	ProviderID   string `json:"provider_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ShowDate     string `json:"show_date"`
	ThumbnailURL string `json:"thumbnail_url"`
	URL          string `json:"url"`
}

// RedisShowListCache implements ShowListCache using Redis as the backing store.
// Expiration is delegated to Redis key TTLs, which are absolute from write.
type RedisShowListCache struct {
	client *redis.Client
}

// NewRedisShowListCache creates a new Redis-backed show list cache.
func NewRedisShowListCache(client *redis.Client) *RedisShowListCache {
	return &RedisShowListCache{
		client: client,
	}
}

// Get retrieves a show list from Redis cache.
// Returns nil, nil on cache miss.
func (c *RedisShowListCache) Get(ctx context.Context, key string) (*model.ShowList, error) {
	data, err := c.client.Get(ctx, c.buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeRedis).Inc()
			return nil, nil
		}
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	list, err := c.deserialize(data)
	if err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		return nil, fmt.Errorf("deserialize show list: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypeRedis).Inc()
	return list, nil
}

// Set stores a show list in Redis cache with the specified TTL.
func (c *RedisShowListCache) Set(ctx context.Context, key string, list *model.ShowList, ttl time.Duration) error {
	data, err := c.serialize(list)
	if err != nil {
		return fmt.Errorf("serialize show list: %w", err)
	}

	if err := c.client.Set(ctx, c.buildKey(key), data, ttl).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypeRedis).Inc()
	return nil
}

// Delete removes a show list from Redis cache.
func (c *RedisShowListCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.buildKey(key)).Err(); err != nil {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusError, metrics.CacheTypeRedis).Inc()
		return fmt.Errorf("redis del: %w", err)
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusSuccess, metrics.CacheTypeRedis).Inc()
	return nil
}

// buildKey constructs the Redis key for a cache key.
func (c *RedisShowListCache) buildKey(key string) string {
	return showListCacheKeyPrefix + key
}

// serialize converts a ShowList to JSON bytes.
// Show dates keep their UTC offset through RFC 3339.
func (c *RedisShowListCache) serialize(list *model.ShowList) ([]byte, error) {
	v := showListJSON{
		Shows:        make([]showJSON, 0, len(list.Shows)),
		MoreShowsURL: list.MoreShowsURL,
	}
	for _, s := range list.Shows {
		v.Shows = append(v.Shows, showJSON{
			Provider:     s.Provider,
			ProviderID:   s.ProviderID,
			Title:        s.Title,
			Description:  s.Description,
			ShowDate:     s.ShowDate.Format(time.RFC3339Nano),
			ThumbnailURL: s.ThumbnailURL,
			URL:          s.URL,
		})
	}
	return json.Marshal(v)
}

// deserialize converts JSON bytes to a ShowList.
func (c *RedisShowListCache) deserialize(data []byte) (*model.ShowList, error) {
	var v showListJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	shows := make([]model.Show, 0, len(v.Shows))
	for _, s := range v.Shows {
		showDate, err := time.Parse(time.RFC3339Nano, s.ShowDate)
		if err != nil {
			return nil, fmt.Errorf("parse show_date: %w", err)
		}
		shows = append(shows, model.Show{
			Provider:     s.Provider,
			ProviderID:   s.ProviderID,
			Title:        s.Title,
			Description:  s.Description,
			ShowDate:     showDate,
			ThumbnailURL: s.ThumbnailURL,
			URL:          s.URL,
		})
	}

	return &model.ShowList{
		Shows:        shows,
		MoreShowsURL: v.MoreShowsURL,
	}, nil
}
