// Package httpx provides HTTP handlers and utilities for the marketplace API.
package httpx

import (
	"net/http"

	"github.com/fixbid/marketplace-api/internal/service"
)

// DiscoveryHandlers provides HTTP handlers for the job discovery feed.
type DiscoveryHandlers struct {
	Svc *service.DiscoveryService
}

// Discover handles HTTP requests for the contractor-facing discovery feed.
// Query parameters select the search text, category, sort order and the
// service area (stored profile via contractor_id, or an explicit
// lat/lon/radius override).
func (h *DiscoveryHandlers) Discover(w http.ResponseWriter, r *http.Request) {
	req, err := ParseDiscoverQuery(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_query", Err: err})
		return
	}

	jobs, err := h.Svc.Discover(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// JobStats handles HTTP requests for a single job's bid statistics.
func (h *DiscoveryHandlers) JobStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	stats, err := h.Svc.JobStats(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}
