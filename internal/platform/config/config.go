// Package config loads the flag planning service settings. Values are layered
// as built-in defaults, then configs/base.yaml, then configs/{profile}.yaml,
// then APP_ environment variables, and the merged result is validated once.
package config

import "time"

// Reference data sources.
const (
	SourceEmbedded = "embedded"
	SourceRemote   = "remote"
)

// Config is the root of the settings tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Reference ReferenceConfig `koanf:"reference"`
	Planner   PlannerConfig   `koanf:"planner"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig controls the inbound listener. RequestTimeout bounds one
// handler run and zero disables it.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig picks the slog level (debug, info, warn, error) and handler
// format (json, text).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ReferenceConfig selects where country reference data comes from. Client is
// only used when Source is "remote".
type ReferenceConfig struct {
	Source   string        `koanf:"source"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
	Client   ClientConfig  `koanf:"client"`
}

// PlannerConfig bounds the work accepted per planning request.
type PlannerConfig struct {
	CompareWorkers int `koanf:"compare_workers"`
	MaxDelegations int `koanf:"max_delegations"`
}

// ClientConfig configures the outbound stack for one downstream service.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig shapes the exponential backoff between attempts. MaxAttempts
// counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig opens the breaker after MaxFailures consecutive
// failures and probes again after Timeout.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig selects the OpenTelemetry exporter. Endpoint is only read
// by the otlp exporter.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
