// Package httpclient is the outbound HTTP stack used to reach the reference
// registry. Every request passes, in order, through a circuit breaker, an
// optional rate limiter, trace header propagation, an OpenTelemetry client
// span and a retry loop with exponential backoff that honors Retry-After.
//
//	client := httpclient.New(&cfg.Reference.Client, "reference-registry", metrics, logger)
//	resp, err := client.Do(ctx, req)
//
// Conditional GETs answered with 304 are counted as "not_modified" so cache
// revalidation shows up separately from fresh downloads.
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sony/gobreaker/v2"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/telemetry"
)

// Client is an instrumented HTTP client bound to one downstream service.
type Client struct {
	peer    string
	base    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter // nil disables throttling
	retry   retryPolicy
	metrics *telemetry.Metrics
}

// New creates a Client for the downstream named peer, which labels its spans,
// metrics and breaker logs. Both metrics and logger may be nil. Retry warnings
// go to the logger carried by the request context.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		peer:    peer,
		base:    strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		retry:   retryPolicy(cfg.Retry),
		metrics: metrics,
	}
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](breakerSettings(peer, cfg.CircuitBreaker, logger))
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.base }

// Name returns the downstream service identifier, e.g. "reference-registry".
func (c *Client) Name() string { return c.peer }

// Do sends req through the breaker, limiter, tracing and retry stages.
//
// On a non-retryable status resp is returned with an open body the caller
// must close. When retries run out on a retryable status both resp and err
// are non-nil and the caller still closes resp.Body. Breaker rejections and
// transport failures return a nil resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		injectTraceHeaders(ctx, req.Header)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.send(spanCtx, req.WithContext(spanCtx)) //nolint:bodyclose // returned to the caller
		endSpan(span, r, err)
		return r, err
	})

	c.observe(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}
