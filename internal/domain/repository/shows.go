package repository

import (
	"context"

	"github.com/hszk-dev/liveshows/internal/domain/model"
)

// ShowSource fetches the current list of recorded shows from the system of record.
// Implementations should be provided by the infrastructure layer (e.g., YouTube).
type ShowSource interface {
	// Fetch performs a single live retrieval.
	// Returns an error wrapping ErrUpstreamFetch on failure; nothing is partially returned.
	Fetch(ctx context.Context) (*model.ShowList, error)
}
