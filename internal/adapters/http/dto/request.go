package dto

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/protocolo-ceremonial/flagplan/internal/domain"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/protocol"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// DateLayout is the wire format of event dates.
const DateLayout = "2006-01-02"

const maxInstitutionalFlagLen = 120

// PlanRequest represents the JSON body describing an event to plan. Field
// names follow the planning UI.
type PlanRequest struct {
	Date              string   `json:"fecha"`
	Event             string   `json:"evento"`
	Venue             string   `json:"sede"`
	Host              string   `json:"anfitrion"`
	Delegations       []string `json:"delegaciones"`
	IncludeEU         bool     `json:"incorporarUE"`
	IncludeUN         bool     `json:"incorporarONU"`
	InstitutionalFlag string   `json:"banderaInstitucional,omitempty"`
	Criterion         string   `json:"criterio"`
}

// Validate checks the request shape. Enum values and reference codes are
// checked by the plan service. Returns a *domain.ValidationError if any
// checks fail.
func (r *PlanRequest) Validate() error {
	fields := make(map[string]string)
	r.validateInto(fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (r *PlanRequest) validateInto(fields map[string]string) {
	if strings.TrimSpace(r.Date) == "" {
		fields["fecha"] = domain.MsgRequired
	} else if _, err := time.Parse(DateLayout, r.Date); err != nil {
		fields["fecha"] = fmt.Sprintf("must be a date in YYYY-MM-DD format, got %q", r.Date)
	}
	if strings.TrimSpace(r.Host) == "" {
		fields["anfitrion"] = domain.MsgRequired
	}
	for i, code := range r.Delegations {
		if strings.TrimSpace(code) == "" {
			fields[fmt.Sprintf("delegaciones[%d]", i)] = "must not be empty"
		}
	}
	if n := utf8.RuneCountInString(r.InstitutionalFlag); n > maxInstitutionalFlagLen {
		fields["banderaInstitucional"] = fmt.Sprintf("must be at most %d characters, got %d", maxInstitutionalFlagLen, n)
	}
}

// ToPlanRequest converts a validated request to the service port type.
func (r *PlanRequest) ToPlanRequest() ports.PlanRequest {
	date, _ := time.Parse(DateLayout, r.Date)
	return ports.PlanRequest{
		Date:              date,
		Event:             protocol.EventType(strings.TrimSpace(r.Event)),
		Venue:             protocol.VenueType(strings.TrimSpace(r.Venue)),
		Host:              r.Host,
		Delegations:       r.Delegations,
		IncludeEU:         r.IncludeEU,
		IncludeUN:         r.IncludeUN,
		InstitutionalFlag: r.InstitutionalFlag,
		Criterion:         protocol.OrderingCriteria(strings.TrimSpace(r.Criterion)),
	}
}

// ComparePlansRequest represents the JSON body for planning one event under
// several ordering criteria. An empty criterios list compares them all; the
// criterio field is ignored.
type ComparePlansRequest struct {
	PlanRequest
	Criteria []string `json:"criterios"`
}

// Validate checks the embedded event and the criteria list.
func (r *ComparePlansRequest) Validate() error {
	fields := make(map[string]string)
	r.validateInto(fields)

	for i, c := range r.Criteria {
		if strings.TrimSpace(c) == "" {
			fields[fmt.Sprintf("criterios[%d]", i)] = "must not be empty"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToCriteria converts the requested criteria to domain values.
func (r *ComparePlansRequest) ToCriteria() []protocol.OrderingCriteria {
	if len(r.Criteria) == 0 {
		return nil
	}
	out := make([]protocol.OrderingCriteria, len(r.Criteria))
	for i, c := range r.Criteria {
		out[i] = protocol.OrderingCriteria(strings.TrimSpace(c))
	}
	return out
}
