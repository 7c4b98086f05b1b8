package app

import (
	"context"
	"errors"

	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// Compile-time check that PlanService can back the readiness probe.
var _ ports.HealthChecker = (*PlanService)(nil)

// Name identifies the catalog check in readiness results.
func (s *PlanService) Name() string {
	return "reference-catalog"
}

// HealthCheck reports whether a usable reference catalog can be loaded. It
// reuses the cross-request snapshot, so a probe within the cache TTL costs
// nothing and a failed load is retried on the next probe.
func (s *PlanService) HealthCheck(ctx context.Context) error {
	catalog, err := s.snapshot.Get(ctx, s.fetchCatalog)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		return errors.New("reference catalog is empty")
	}
	return nil
}

// InvalidateCatalog drops the cached reference catalog so the next request
// reloads it from the source. The server calls it on SIGHUP.
func (s *PlanService) InvalidateCatalog() {
	s.snapshot.Invalidate()
}
