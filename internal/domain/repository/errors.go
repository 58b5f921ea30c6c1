package repository

import "errors"

var (
	// ErrUpstreamFetch is returned when the upstream listing API cannot be read:
	// network failure, non-success response, or an undecodable payload.
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrMalformedItem is returned when an upstream item cannot be mapped to a show.
	// Errors wrapping it also wrap ErrUpstreamFetch.
	ErrMalformedItem = errors.New("malformed upstream item")
)
