package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCompareWorkers = 3
	defaultMaxDelegations = 60
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"reference.source":                                 SourceEmbedded,
		"reference.cache_ttl":                              "5m",
		"reference.client.base_url":                        "http://localhost:8081",
		"reference.client.timeout":                         "10s",
		"reference.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"reference.client.retry.initial_interval":          "100ms",
		"reference.client.retry.max_interval":              "2s",
		"reference.client.retry.multiplier":                defaultRetryMultiplier,
		"reference.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"reference.client.circuit_breaker.timeout":         "30s",
		"reference.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"reference.client.rate_limit.requests_per_second":  0,
		"reference.client.rate_limit.burst_size":           0,

		"planner.compare_workers": defaultCompareWorkers,
		"planner.max_delegations": defaultMaxDelegations,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "flagplan",
	}
}
