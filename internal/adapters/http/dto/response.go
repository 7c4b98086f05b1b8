// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/protocolo-ceremonial/flagplan/internal/domain/country"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/protocol"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// PlacementResponse represents one flag position in HTTP responses.
type PlacementResponse struct {
	Position    int    `json:"posicion"`
	Precedence  int    `json:"precedencia"`
	Actor       string `json:"actor"`
	Code        string `json:"codigo"`
	Kind        string `json:"tipo"`
	Flag        string `json:"bandera,omitempty"`
	Description string `json:"descripcion"`
}

// BriefingResponse represents one briefing card.
type BriefingResponse struct {
	Title   string `json:"titulo"`
	Details string `json:"detalles"`
}

// MilestoneResponse represents one preparation milestone.
type MilestoneResponse struct {
	Title string `json:"hito"`
	Owner string `json:"responsable"`
	Date  string `json:"fecha"`
	ISO   string `json:"fecha_iso"`
}

// PlanResponse represents a complete protocol plan in HTTP responses.
type PlanResponse struct {
	Order      []PlacementResponse `json:"orden"`
	Summary    string              `json:"resumen"`
	Briefings  []BriefingResponse  `json:"briefings"`
	Milestones []MilestoneResponse `json:"cronograma"`
	Warnings   []string            `json:"avisos"`
}

// ToPlanResponse converts a domain Plan to an HTTP response DTO. Slices are
// never nil so clients always receive arrays.
func ToPlanResponse(p *protocol.Plan) PlanResponse {
	order := make([]PlacementResponse, len(p.Order))
	for i, e := range p.Order {
		order[i] = PlacementResponse{
			Position:    e.Position,
			Precedence:  e.Precedence,
			Actor:       e.Actor.Name,
			Code:        e.Actor.Code,
			Kind:        e.Actor.Kind.String(),
			Flag:        e.Actor.Flag,
			Description: e.Description,
		}
	}

	briefings := make([]BriefingResponse, len(p.Briefings))
	for i, b := range p.Briefings {
		briefings[i] = BriefingResponse{Title: b.Title, Details: b.Details}
	}

	milestones := make([]MilestoneResponse, len(p.Milestones))
	for i, m := range p.Milestones {
		milestones[i] = MilestoneResponse{
			Title: m.Title,
			Owner: m.Owner,
			Date:  m.DateLabel,
			ISO:   m.Date.Format(DateLayout),
		}
	}

	warnings := make([]string, len(p.Warnings))
	for i, w := range p.Warnings {
		warnings[i] = w.Notice()
	}

	return PlanResponse{
		Order:      order,
		Summary:    p.Summary,
		Briefings:  briefings,
		Milestones: milestones,
		Warnings:   warnings,
	}
}

// CriterionPlanResponse represents the outcome under one criterion. Exactly
// one of Plan and Error is set.
type CriterionPlanResponse struct {
	Criterion string        `json:"criterio"`
	Plan      *PlanResponse `json:"plan,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// ComparePlansResponse represents the result of a comparison. It includes
// both successful plans and per-criterion errors.
type ComparePlansResponse struct {
	Results   []CriterionPlanResponse `json:"resultados"`
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
}

// ToComparePlansResponse converts per-criterion results to an HTTP response DTO.
func ToComparePlansResponse(results []ports.CriterionPlan) ComparePlansResponse {
	resp := ComparePlansResponse{
		Results: make([]CriterionPlanResponse, len(results)),
		Total:   len(results),
	}
	for i, r := range results {
		item := CriterionPlanResponse{Criterion: r.Criterion.String()}
		if r.Err != nil {
			item.Error = r.Err.Error()
			resp.Failed++
		} else {
			plan := ToPlanResponse(r.Plan)
			item.Plan = &plan
			resp.Succeeded++
		}
		resp.Results[i] = item
	}
	return resp
}

// CountryResponse represents one reference record in HTTP responses.
type CountryResponse struct {
	Code       string `json:"codigo"`
	Name       string `json:"nombre"`
	Flag       string `json:"bandera"`
	Locale     string `json:"locale,omitempty"`
	Precedence int    `json:"precedencia,omitempty"`
	Seniority  string `json:"antiguedad,omitempty"`
}

// CountryListResponse represents the reference table in HTTP responses.
type CountryListResponse struct {
	Countries []CountryResponse `json:"paises"`
	Count     int               `json:"count"`
}

// ToCountryListResponse converts domain countries to an HTTP list response DTO.
func ToCountryListResponse(countries []country.Country) CountryListResponse {
	items := make([]CountryResponse, len(countries))
	for i, c := range countries {
		items[i] = CountryResponse{
			Code:       c.Code,
			Name:       c.Name,
			Flag:       c.Flag,
			Locale:     c.Locale,
			Precedence: c.PrecedenceRank,
		}
		if !c.Seniority.IsZero() {
			items[i].Seniority = c.Seniority.Format(DateLayout)
		}
	}
	return CountryListResponse{
		Countries: items,
		Count:     len(items),
	}
}
