package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *ReferenceClient) Name() string {
	return "reference-registry"
}

// HealthCheck reports the registry's availability from the circuit breaker
// state; no network call is made.
//
// This reports downstream status, not service readiness. Plans already
// cached keep being served while the registry is failing.
func (c *ReferenceClient) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
