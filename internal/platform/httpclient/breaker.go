package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
)

// breakerSettings trips after MaxFailures consecutive failures and lets
// HalfOpenLimit probes through once Timeout has elapsed.
func breakerSettings(peer string, cfg config.CircuitBreakerConfig, logger *slog.Logger) gobreaker.Settings {
	probes := uint32(math.MaxUint32)
	if int64(cfg.HalfOpenLimit) < math.MaxUint32 {
		probes = uint32(max(cfg.HalfOpenLimit, 0)) //nolint:gosec // bounded above
	}

	return gobreaker.Settings{
		Name:        peer,
		MaxRequests: probes,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
}

// breakerHealth is the readiness message for each non-closed breaker state.
var breakerHealth = map[gobreaker.State]string{
	gobreaker.StateHalfOpen: "degraded (circuit breaker half-open)",
	gobreaker.StateOpen:     "failing (circuit breaker open)",
}

// HealthCheck reports the downstream's availability from the breaker state
// without making a network call.
func (c *Client) HealthCheck(context.Context) error {
	state := c.breaker.State()
	if state == gobreaker.StateClosed {
		return nil
	}
	if msg, ok := breakerHealth[state]; ok {
		return fmt.Errorf("%s: %s", c.peer, msg)
	}
	return fmt.Errorf("%s: unknown circuit breaker state %v", c.peer, state)
}
