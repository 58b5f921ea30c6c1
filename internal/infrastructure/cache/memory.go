package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hszk-dev/liveshows/internal/domain/model"
	"github.com/hszk-dev/liveshows/internal/infrastructure/metrics"
)

type memoryEntry struct {
	list      *model.ShowList
	expiresAt time.Time
}

// MemoryShowListCache implements ShowListCache in process memory.
// Expired entries are evicted lazily on lookup.
type MemoryShowListCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryShowListCache creates an empty in-memory cache.
// now is the clock used for expiration; nil means time.Now.
func NewMemoryShowListCache(now func() time.Time) *MemoryShowListCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryShowListCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

// Get returns the entry for key if it has not expired.
func (c *MemoryShowListCache) Get(_ context.Context, key string) (*model.ShowList, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeMemory).Inc()
		return nil, nil
	}

	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		// Another writer may have replaced the entry since the read lock was released.
		if cur, ok := c.entries[key]; ok && cur.list == entry.list && cur.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusMiss, metrics.CacheTypeMemory).Inc()
		return nil, nil
	}

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpGet, metrics.CacheStatusHit, metrics.CacheTypeMemory).Inc()
	return entry.list, nil
}

// Set replaces the entry for key.
func (c *MemoryShowListCache) Set(_ context.Context, key string, list *model.ShowList, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{list: list, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpSet, metrics.CacheStatusSuccess, metrics.CacheTypeMemory).Inc()
	return nil
}

// Delete removes the entry for key.
func (c *MemoryShowListCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	metrics.CacheOperationsTotal.WithLabelValues(metrics.CacheOpDelete, metrics.CacheStatusSuccess, metrics.CacheTypeMemory).Inc()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryShowListCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
