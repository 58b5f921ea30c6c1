package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hszk-dev/liveshows/internal/api/middleware"
	"github.com/hszk-dev/liveshows/internal/domain/model"
	"github.com/hszk-dev/liveshows/internal/domain/repository"
	"github.com/hszk-dev/liveshows/internal/usecase"
)

// disableCacheParam is the query parameter an admin sets to skip the cache.
const disableCacheParam = "disableCache"

// Request/Response types

type ShowResponse struct {
	Provider     string `json:"provider"`
	ProviderID   string `json:"provider_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ShowDate     string `json:"show_date"`
	ThumbnailURL string `json:"thumbnail_url"`
	URL          string `json:"url"`
}

type ShowListResponse struct {
	Shows        []ShowResponse `json:"shows"`
	MoreShowsURL string         `json:"more_shows_url,omitempty"`
}

// ShowHandler handles recorded show HTTP requests.
type ShowHandler struct {
	svc    usecase.ShowService
	logger *slog.Logger
}

// NewShowHandler creates a new ShowHandler.
func NewShowHandler(svc usecase.ShowService, logger *slog.Logger) *ShowHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShowHandler{svc: svc, logger: logger}
}

// List handles GET /v1/shows
func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	disableCache := false
	if raw := r.URL.Query().Get(disableCacheParam); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			Error(w, http.StatusBadRequest, codeInvalidDisableCache, "disableCache must be a boolean")
			return
		}
		disableCache = v
	}

	bypass := middleware.IsAuthenticated(r.Context()) && disableCache

	list, err := h.svc.GetShows(r.Context(), bypass)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toShowListResponse(list))
}

func (h *ShowHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("failed to get shows",
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.String("error", err.Error()),
	)

	switch {
	case errors.Is(err, repository.ErrUpstreamFetch):
		Error(w, http.StatusServiceUnavailable, codeShowsUnavailable, "Recorded shows are temporarily unavailable")
	default:
		Error(w, http.StatusInternalServerError, codeInternal, "An unexpected error occurred")
	}
}

func toShowListResponse(l *model.ShowList) ShowListResponse {
	shows := make([]ShowResponse, 0, len(l.Shows))
	for _, s := range l.Shows {
		shows = append(shows, ShowResponse{
			Provider:     s.Provider,
			ProviderID:   s.ProviderID,
			Title:        s.Title,
			Description:  s.Description,
			ShowDate:     s.ShowDate.Format(time.RFC3339),
			ThumbnailURL: s.ThumbnailURL,
			URL:          s.URL,
		})
	}
	return ShowListResponse{
		Shows:        shows,
		MoreShowsURL: l.MoreShowsURL,
	}
}
