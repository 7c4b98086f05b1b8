package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every failed rule so Validate reports them together.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) oneOf(key, got string, allowed []string) {
	p.require(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

// Validate checks every section and returns all violations joined.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(s.RequestTimeout >= 0, "server.request_timeout must not be negative")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	r := c.Reference
	p.oneOf("reference.source", r.Source, []string{SourceEmbedded, SourceRemote})
	p.require(r.CacheTTL >= 0, "reference.cache_ttl must not be negative")
	if r.Source == SourceRemote {
		r.Client.validate(&p)
	}

	p.require(c.Planner.CompareWorkers >= 1, "planner.compare_workers must be >= 1, got %d", c.Planner.CompareWorkers)
	p.require(c.Planner.MaxDelegations >= 1, "planner.max_delegations must be >= 1, got %d", c.Planner.MaxDelegations)

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	}

	return errors.Join(p...)
}

// validate only runs for the remote source; the embedded table ignores the
// client block.
func (cl *ClientConfig) validate(p *problems) {
	const prefix = "reference.client."
	p.require(cl.BaseURL != "", prefix+"base_url must not be empty")
	p.require(cl.Timeout > 0, prefix+"timeout must be positive")
	p.require(cl.Retry.MaxAttempts >= 1, prefix+"retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, prefix+"retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		prefix+"circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.require(cl.RateLimit.RequestsPerSecond >= 0, prefix+"rate_limit.requests_per_second must not be negative")
	p.require(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		prefix+"rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
}
