package cache

import (
	"context"
	"time"

	"github.com/hszk-dev/liveshows/internal/domain/model"
)

// ShowListCache defines the interface for caching show lists.
// Implementations should handle serialization/deserialization transparently.
type ShowListCache interface {
	// Get retrieves a show list from cache by key.
	// Returns nil, nil if the key is not present or has expired (cache miss).
	Get(ctx context.Context, key string) (*model.ShowList, error)

	// Set stores a show list with an absolute expiration of now + ttl.
	// An existing entry under the same key is replaced.
	Set(ctx context.Context, key string, list *model.ShowList, ttl time.Duration) error

	// Delete removes a show list from cache by key.
	// Returns nil if the key was not in cache.
	Delete(ctx context.Context, key string) error
}
