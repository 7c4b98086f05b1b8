package handlers

import (
	"net/http"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// CountryHandler serves the reference table used to fill host and guest
// pickers.
type CountryHandler struct {
	service ports.PlanService
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(service ports.PlanService) *CountryHandler {
	return &CountryHandler{service: service}
}

// ListCountries handles GET /api/v1/countries.
func (h *CountryHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.ListCountries(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCountryListResponse(countries))
}
