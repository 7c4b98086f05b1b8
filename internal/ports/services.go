package ports

import (
	"context"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/domain/country"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/protocol"
)

// PlanService defines the service port for flag protocol planning.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the CLI).
type PlanService interface {
	// GeneratePlan resolves the request against the reference data and runs
	// the protocol engine.
	// Returns domain.ErrValidation for malformed or unknown request fields and
	// domain.ErrInvalidInput when the engine rejects the event.
	GeneratePlan(ctx context.Context, req PlanRequest) (*protocol.Plan, error)

	// ComparePlans plans the same event once per ordering criterion.
	// Uses partial success semantics: each criterion succeeds or fails
	// independently. Returns a hard error only for request-level failures.
	ComparePlans(ctx context.Context, req PlanRequest, criteria []protocol.OrderingCriteria) ([]CriterionPlan, error)

	// ListCountries returns the reference records available as host or guest.
	ListCountries(ctx context.Context) ([]country.Country, error)
}

// PlanRequest is the caller's description of an event. Host and Delegations
// are reference-data codes.
type PlanRequest struct {
	Date              time.Time
	Event             protocol.EventType
	Venue             protocol.VenueType
	Host              string
	Delegations       []string
	IncludeEU         bool
	IncludeUN         bool
	InstitutionalFlag string
	Criterion         protocol.OrderingCriteria
}

// CriterionPlan holds the outcome of planning under one criterion.
// Exactly one of Plan and Err is set.
type CriterionPlan struct {
	Criterion protocol.OrderingCriteria
	Plan      *protocol.Plan
	Err       error
}
