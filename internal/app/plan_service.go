// Package app holds the planning use cases. PlanService resolves reference
// codes, runs the protocol engine and fans criteria out for comparisons; it
// reaches reference data only through ports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	appctx "github.com/protocolo-ceremonial/flagplan/internal/app/context"
	"github.com/protocolo-ceremonial/flagplan/internal/app/fanout"
	"github.com/protocolo-ceremonial/flagplan/internal/domain"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/country"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/protocol"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/telemetry"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// Compile-time check that PlanService implements ports.PlanService.
var _ ports.PlanService = (*PlanService)(nil)

const (
	defaultCompareWorkers = 3
	defaultMaxDelegations = 60
	defaultCatalogTTL     = 5 * time.Minute
	catalogKey            = "catalog"
)

// PlanService implements ports.PlanService. It turns a request expressed in
// reference-data codes into an engine EventContext, runs the protocol engine
// and records plan metrics. The engine itself holds all placement rules.
type PlanService struct {
	reference      ports.ReferenceClient
	logger         *slog.Logger
	metrics        *telemetry.Metrics
	now            func() time.Time
	compareWorkers int
	maxDelegations int
	catalogTTL     time.Duration
	snapshot       *appctx.Snapshot[*country.Catalog]
	catalog        *appctx.DataProvider[*country.Catalog]
}

// Option configures a PlanService.
type Option func(*PlanService)

// WithClock sets the function used as "today" when dropping past milestones.
func WithClock(now func() time.Time) Option {
	return func(s *PlanService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics enables plan counters. A nil value disables them.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *PlanService) { s.metrics = m }
}

// WithCompareWorkers bounds how many criteria ComparePlans plans at once.
func WithCompareWorkers(n int) Option {
	return func(s *PlanService) {
		if n > 0 {
			s.compareWorkers = n
		}
	}
}

// WithMaxDelegations caps the number of delegations accepted per request.
func WithMaxDelegations(n int) Option {
	return func(s *PlanService) {
		if n > 0 {
			s.maxDelegations = n
		}
	}
}

// WithCatalogTTL sets how long the reference catalog is reused across
// requests. Zero disables the cross-request cache.
func WithCatalogTTL(ttl time.Duration) Option {
	return func(s *PlanService) {
		if ttl >= 0 {
			s.catalogTTL = ttl
		}
	}
}

// NewPlanService creates a PlanService backed by the given reference data
// source. A nil logger is replaced with a no-op logger.
func NewPlanService(reference ports.ReferenceClient, logger *slog.Logger, opts ...Option) *PlanService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &PlanService{
		reference:      reference,
		logger:         logger,
		now:            time.Now,
		compareWorkers: defaultCompareWorkers,
		maxDelegations: defaultMaxDelegations,
		catalogTTL:     defaultCatalogTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.snapshot = appctx.NewSnapshot[*country.Catalog](s.catalogTTL, s.now)
	s.catalog = appctx.NewDataProvider(catalogKey, func(ctx context.Context) (*country.Catalog, error) {
		return s.snapshot.Get(ctx, s.fetchCatalog)
	})
	return s
}

// GeneratePlan validates the request, resolves its codes against the
// reference catalog and runs the protocol engine.
func (s *PlanService) GeneratePlan(ctx context.Context, req ports.PlanRequest) (*protocol.Plan, error) {
	s.logger.InfoContext(ctx, "generating plan",
		slog.String("event", req.Event.String()),
		slog.String("venue", req.Venue.String()),
		slog.String("host", req.Host),
		slog.Int("delegations", len(req.Delegations)),
	)

	if err := s.validateRequest(req, true); err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx, "GeneratePlan")
	if err != nil {
		return nil, err
	}

	ec, err := s.eventContext(catalog, req)
	if err != nil {
		return nil, err
	}

	return s.plan(ctx, ec, "GeneratePlan")
}

// ComparePlans plans the same event once per criterion. An empty criteria
// list compares every supported criterion. Results follow the order of the
// criteria; a failure under one criterion does not affect the others.
func (s *PlanService) ComparePlans(ctx context.Context, req ports.PlanRequest, criteria []protocol.OrderingCriteria) ([]ports.CriterionPlan, error) {
	if len(criteria) == 0 {
		criteria = protocol.Criteria()
	}

	s.logger.InfoContext(ctx, "comparing plans",
		slog.String("event", req.Event.String()),
		slog.String("host", req.Host),
		slog.Int("criteria", len(criteria)),
	)

	if err := s.validateRequest(req, false); err != nil {
		return nil, err
	}
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx, "ComparePlans")
	if err != nil {
		return nil, err
	}

	base, err := s.eventContext(catalog, req)
	if err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.compareWorkers, criteria,
		func(ctx context.Context, c protocol.OrderingCriteria) (*protocol.Plan, error) {
			ec := base
			ec.Criterion = c
			return s.plan(ctx, ec, "ComparePlans")
		},
	)

	out := make([]ports.CriterionPlan, len(criteria))
	for i, r := range results {
		out[i] = ports.CriterionPlan{Criterion: criteria[i], Plan: r.Value, Err: r.Err}
	}
	return out, nil
}

// ListCountries returns the reference catalog in presentation order.
func (s *PlanService) ListCountries(ctx context.Context) ([]country.Country, error) {
	s.logger.InfoContext(ctx, "listing countries")

	catalog, err := s.loadCatalog(ctx, "ListCountries")
	if err != nil {
		return nil, err
	}
	return catalog.All(), nil
}

func (s *PlanService) plan(ctx context.Context, ec protocol.EventContext, operation string) (*protocol.Plan, error) {
	p, err := protocol.GeneratePlan(ec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to generate plan",
			slog.String("operation", operation),
			slog.String("criterion", ec.Criterion.String()),
			slog.Any("error", err),
		)
		s.recordPlan(ctx, ec, nil, "error")
		return nil, err
	}

	for _, w := range p.Warnings {
		s.logger.WarnContext(ctx, "actor missing from reference table",
			slog.String("operation", operation),
			slog.String("code", w.Code),
			slog.String("criterion", w.Criterion.String()),
		)
	}

	s.recordPlan(ctx, ec, p, "success")
	return p, nil
}

func (s *PlanService) recordPlan(ctx context.Context, ec protocol.EventContext, p *protocol.Plan, result string) {
	if s.metrics == nil {
		return
	}

	attrs := s.metrics.PlanAttributes(
		telemetry.AttrEventType.String(ec.Event.String()),
		telemetry.AttrVenueType.String(ec.Venue.String()),
		telemetry.AttrCriterion.String(ec.Criterion.String()),
		telemetry.AttrResult.String(result),
	)
	s.metrics.PlanGeneratedTotal.Add(ctx, 1, attrs)
	if p == nil {
		return
	}
	s.metrics.PlanFlagCount.Record(ctx, int64(len(p.Order)), attrs)
	if len(p.Warnings) > 0 {
		s.metrics.PlanWarningTotal.Add(ctx, int64(len(p.Warnings)), attrs)
	}
}

func (s *PlanService) loadCatalog(ctx context.Context, operation string) (*country.Catalog, error) {
	catalog, err := s.catalog.Get(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load reference catalog",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return nil, err
	}
	return catalog, nil
}

func (s *PlanService) fetchCatalog(ctx context.Context) (*country.Catalog, error) {
	countries, err := s.reference.ListCountries(ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := country.NewCatalog(countries)
	if err != nil {
		return nil, fmt.Errorf("building reference catalog: %w", err)
	}

	s.logger.DebugContext(ctx, "reference catalog loaded", slog.Int("countries", catalog.Len()))
	return catalog, nil
}

// validateRequest checks request shape before any reference lookup. The
// criterion is only required for single plans.
func (s *PlanService) validateRequest(req ports.PlanRequest, needCriterion bool) error {
	fields := make(map[string]string)

	if req.Date.IsZero() {
		fields["fecha"] = domain.MsgRequired
	}
	if !req.Event.IsValid() {
		fields["evento"] = invalidChoice(string(req.Event), protocol.EventTypes())
	}
	if !req.Venue.IsValid() {
		fields["sede"] = invalidChoice(string(req.Venue), protocol.VenueTypes())
	}
	if needCriterion && !req.Criterion.IsValid() {
		fields["criterio"] = invalidChoice(string(req.Criterion), protocol.Criteria())
	}
	if strings.TrimSpace(req.Host) == "" {
		fields["anfitrion"] = domain.MsgRequired
	}
	if n := distinctCodes(req.Delegations); n > s.maxDelegations {
		fields["delegaciones"] = fmt.Sprintf("must not exceed %d distinct entries, got %d", s.maxDelegations, n)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// distinctCodes counts delegation codes the way the catalog matches them, so
// repeated entries do not count against the limit.
func distinctCodes(codes []string) int {
	seen := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		seen[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}
	return len(seen)
}

func validateCriteria(criteria []protocol.OrderingCriteria) error {
	fields := make(map[string]string)
	seen := make(map[protocol.OrderingCriteria]bool, len(criteria))

	for i, c := range criteria {
		key := fmt.Sprintf("criterios[%d]", i)
		switch {
		case !c.IsValid():
			fields[key] = invalidChoice(string(c), protocol.Criteria())
		case seen[c]:
			fields[key] = fmt.Sprintf("duplicate criterion %q", c)
		}
		seen[c] = true
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// eventContext maps request codes to engine actors. Unknown codes are
// reported per field; repeated and host codes are left to the engine.
func (s *PlanService) eventContext(catalog *country.Catalog, req ports.PlanRequest) (protocol.EventContext, error) {
	fields := make(map[string]string)

	host, ok := catalog.Lookup(req.Host)
	if !ok {
		fields["anfitrion"] = fmt.Sprintf("unknown country code %q", req.Host)
	}

	delegations := make([]protocol.Actor, 0, len(req.Delegations))
	for i, code := range req.Delegations {
		c, ok := catalog.Lookup(code)
		if !ok {
			fields[fmt.Sprintf("delegaciones[%d]", i)] = fmt.Sprintf("unknown country code %q", code)
			continue
		}
		delegations = append(delegations, c.Actor(protocol.KindDelegation))
	}

	if len(fields) > 0 {
		return protocol.EventContext{}, &domain.ValidationError{Fields: fields}
	}

	return protocol.EventContext{
		Date:              req.Date,
		Event:             req.Event,
		Venue:             req.Venue,
		Host:              host.Actor(protocol.KindHost),
		Delegations:       delegations,
		IncludeEU:         req.IncludeEU,
		IncludeUN:         req.IncludeUN,
		InstitutionalFlag: req.InstitutionalFlag,
		Criterion:         req.Criterion,
		Locale:            host.Tag(),
		PlannedOn:         s.now(),
	}, nil
}

func invalidChoice[T ~string](got string, allowed []T) string {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	if got == "" {
		return fmt.Sprintf("is required (one of %s)", strings.Join(names, ", "))
	}
	return fmt.Sprintf("must be one of %s, got %q", strings.Join(names, ", "), got)
}
