// Package handlers implements the inbound HTTP endpoints. Handlers decode and
// validate DTOs, call the service port, and map results and errors to JSON.
package handlers

import (
	"net/http"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// PlanHandler handles HTTP requests for flag protocol plans.
type PlanHandler struct {
	service ports.PlanService
}

// NewPlanHandler creates a new PlanHandler with the given service port.
func NewPlanHandler(service ports.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// GeneratePlan handles POST /api/v1/plans.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := h.service.GeneratePlan(r.Context(), req.ToPlanRequest())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToPlanResponse(plan))
}

// ComparePlans handles POST /api/v1/plans/compare. Per-criterion failures are
// reported inside a 200 response; only request-level failures map to an
// error status.
func (h *PlanHandler) ComparePlans(w http.ResponseWriter, r *http.Request) {
	var req dto.ComparePlansRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	results, err := h.service.ComparePlans(r.Context(), req.ToPlanRequest(), req.ToCriteria())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToComparePlansResponse(results))
}
