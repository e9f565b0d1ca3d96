package httpx

import (
	"net/http"

	"github.com/fixbid/marketplace-api/internal/domain/model"
	"github.com/fixbid/marketplace-api/internal/service"
)

// BidHandlers provides HTTP handlers for bidding operations.
type BidHandlers struct {
	Svc *service.BidService
}

// PlaceBid handles HTTP requests to place a bid on a job.
func (h *BidHandlers) PlaceBid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req model.CreateBidRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	bid, err := h.Svc.Place(r.Context(), id, &req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, bid)
}

// ListBids handles HTTP requests to list the bids on a job.
func (h *BidHandlers) ListBids(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	bids, err := h.Svc.ListByJob(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"bids":  bids,
		"count": len(bids),
	})
}
