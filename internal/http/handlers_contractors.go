package httpx

import (
	"net/http"

	"github.com/fixbid/marketplace-api/internal/domain/model"
	"github.com/fixbid/marketplace-api/internal/service"
)

// ContractorHandlers provides HTTP handlers for contractor profile
// operations.
type ContractorHandlers struct {
	Svc *service.ContractorService
}

// serviceAreaPayload is the wire shape of a contractor's service area. The
// center is flattened so clients never send a half-filled coordinate object.
type serviceAreaPayload struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	RadiusKm float64  `json:"radius_km"`
	Active   bool     `json:"active"`
}

func toServiceAreaPayload(area model.ServiceArea) serviceAreaPayload {
	p := serviceAreaPayload{RadiusKm: area.RadiusKm, Active: area.Active}
	if area.Center != nil {
		p.Lat = &area.Center.Lat
		p.Lon = &area.Center.Lon
	}
	return p
}

func (p serviceAreaPayload) toModel() model.ServiceArea {
	area := model.ServiceArea{RadiusKm: p.RadiusKm, Active: p.Active}
	if p.Lat != nil && p.Lon != nil {
		area.Center = &model.Coordinate{Lat: *p.Lat, Lon: *p.Lon}
	}
	return area
}

// GetServiceArea handles HTTP requests for a contractor's service area.
func (h *ContractorHandlers) GetServiceArea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	area, err := h.Svc.GetServiceArea(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, toServiceAreaPayload(area))
}

// UpdateServiceArea handles HTTP requests to replace a contractor's service
// area.
func (h *ContractorHandlers) UpdateServiceArea(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var payload serviceAreaPayload
	if !DecodeJSON(w, r, &payload) {
		return
	}

	if err := h.Svc.UpdateServiceArea(r.Context(), id, payload.toModel()); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, payload)
}
