// Package youtube retrieves recorded shows from a YouTube playlist
// via the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hszk-dev/liveshows/internal/domain/model"
	"github.com/hszk-dev/liveshows/internal/domain/repository"
)

const (
	// DependencyName and DependencyOperation label the playlist listing call in telemetry.
	DependencyName      = "YouTube.PlayListItemsApi"
	DependencyOperation = "List"

	defaultBaseURL    = "https://www.googleapis.com/youtube/v3"
	defaultMaxResults = 3 * 8
	defaultTimeout    = 10 * time.Second

	// maxErrorBody caps how much of a failed response is read for diagnostics.
	maxErrorBody = 4 << 10
)

// ItemErrorPolicy decides what happens when a single playlist item cannot be mapped.
type ItemErrorPolicy int

const (
	// ItemErrorAbort fails the whole fetch on the first malformed item.
	ItemErrorAbort ItemErrorPolicy = iota
	// ItemErrorSkip logs and drops malformed items.
	ItemErrorSkip
)

// RetrieverConfig holds configuration for Retriever.
type RetrieverConfig struct {
	BaseURL         string
	ApplicationName string
	APIKey          string
	PlaylistID      string
	MaxResults      int
	Timeout         time.Duration
	ItemErrorPolicy ItemErrorPolicy
}

// DefaultRetrieverConfig returns a RetrieverConfig with sensible defaults.
func DefaultRetrieverConfig(apiKey, playlistID string) RetrieverConfig {
	return RetrieverConfig{
		BaseURL:         defaultBaseURL,
		ApplicationName: "liveshows",
		APIKey:          apiKey,
		PlaylistID:      playlistID,
		MaxResults:      defaultMaxResults,
		Timeout:         defaultTimeout,
		ItemErrorPolicy: ItemErrorAbort,
	}
}

// Retriever implements repository.ShowSource using the playlistItems endpoint.
type Retriever struct {
	cfg        RetrieverConfig
	httpClient *http.Client
	tracker    repository.DependencyTracker
	logger     *slog.Logger
	now        func() time.Time
}

// Compile-time verification that Retriever implements repository.ShowSource.
var _ repository.ShowSource = (*Retriever)(nil)

// NewRetriever creates a new Retriever.
func NewRetriever(cfg RetrieverConfig, tracker repository.DependencyTracker, logger *slog.Logger) *Retriever {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if tracker == nil {
		tracker = repository.NopTracker{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tracker:    tracker,
		logger:     logger,
		now:        time.Now,
	}
}

// Fetch lists the newest items of the configured playlist and maps them to shows.
func (r *Retriever) Fetch(ctx context.Context) (*model.ShowList, error) {
	start := r.now()
	resp, err := r.listPlaylistItems(ctx)
	r.tracker.TrackDependency(DependencyName, DependencyOperation, start, r.now().Sub(start), err == nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list playlist items: %w", repository.ErrUpstreamFetch, err)
	}

	shows := make([]model.Show, 0, len(resp.Items))
	for i, item := range resp.Items {
		show, err := toShow(item)
		if err != nil {
			if r.cfg.ItemErrorPolicy == ItemErrorSkip {
				r.logger.Warn("skipping malformed playlist item",
					"position", i,
					"video_id", item.Snippet.ResourceID.VideoID,
					"error", err,
				)
				continue
			}
			return nil, fmt.Errorf("%w: %w: item %d: %w", repository.ErrUpstreamFetch, repository.ErrMalformedItem, i, err)
		}
		shows = append(shows, show)
	}

	list := &model.ShowList{Shows: shows}
	if resp.NextPageToken != "" {
		list.MoreShowsURL = PlaylistURL(r.cfg.PlaylistID)
	}
	return list, nil
}

// listPlaylistItems performs the HTTP call and decodes the response.
func (r *Retriever) listPlaylistItems(ctx context.Context) (*playlistItemListResponse, error) {
	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("playlistId", r.cfg.PlaylistID)
	query.Set("maxResults", strconv.Itoa(r.cfg.MaxResults))
	query.Set("key", r.cfg.APIKey)

	reqURL := fmt.Sprintf("%s/playlistItems?%s", r.cfg.BaseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.cfg.ApplicationName != "" {
		req.Header.Set("User-Agent", r.cfg.ApplicationName)
	}

	res, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, unexpectedStatus(res)
	}

	var out playlistItemListResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func unexpectedStatus(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("unexpected status %d: %s", res.StatusCode, apiErr.Error.Message)
	}
	return fmt.Errorf("unexpected status %d", res.StatusCode)
}

// toShow maps one playlist item to a domain show.
func toShow(item playlistItemJSON) (model.Show, error) {
	s := item.Snippet

	// RFC 3339 parsing keeps the upstream offset as a fixed zone.
	showDate, err := time.Parse(time.RFC3339Nano, s.PublishedAt)
	if err != nil {
		return model.Show{}, fmt.Errorf("parse publishedAt %q: %w", s.PublishedAt, err)
	}

	var position int64
	if s.Position != nil {
		position = *s.Position
	}

	var thumbnail string
	if s.Thumbnails.High != nil {
		thumbnail = s.Thumbnails.High.URL
	}

	return model.Show{
		Provider:     model.ProviderYouTube,
		ProviderID:   s.ResourceID.VideoID,
		Title:        ExtractTitle(s.Title),
		Description:  s.Description,
		ShowDate:     showDate,
		ThumbnailURL: thumbnail,
		URL:          WatchURL(s.ResourceID.VideoID, s.PlaylistID, position),
	}, nil
}
