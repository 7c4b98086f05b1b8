package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/httpclient"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/telemetry"
)

const countriesPath = "/api/v1/countries"

// clientConfig returns settings tuned for fast tests, adjusted by opts.
func clientConfig(baseURL string, opts ...func(*config.ClientConfig)) *config.ClientConfig {
	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts: 3, InitialInterval: 5 * time.Millisecond,
			MaxInterval: 50 * time.Millisecond, Multiplier: 2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Second, HalfOpenLimit: 1},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// tripOnFirstFailure makes one failed call open the breaker for 100ms.
func tripOnFirstFailure(cfg *config.ClientConfig) {
	cfg.CircuitBreaker = config.CircuitBreakerConfig{MaxFailures: 1, Timeout: 100 * time.Millisecond, HalfOpenLimit: 1}
	cfg.Retry.MaxAttempts = 1
}

func newClient(cfg *config.ClientConfig) *httpclient.Client {
	return httpclient.New(cfg, "reference-registry", nil, slog.New(slog.DiscardHandler))
}

// registry starts a fake reference registry that answers with statuses in
// order, repeating the last one, and counts the calls it receives.
func registry(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(calls.Add(1))
		status := statuses[min(n, len(statuses))-1]
		w.WriteHeader(status)
		if status != http.StatusNotModified {
			_, _ = io.WriteString(w, http.StatusText(status))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func getCountries(ctx context.Context, t *testing.T, client *httpclient.Client) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+countriesPath, http.NoBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	return client.Do(ctx, req)
}

func closeBody(resp *http.Response) {
	if resp != nil {
		_ = resp.Body.Close()
	}
}

func TestDo_StatusHandling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statuses   []int
		wantCalls  int32
		wantStatus int
		wantErr    bool
	}{
		{name: "ok", statuses: []int{200}, wantCalls: 1, wantStatus: 200},
		{name: "not modified is final", statuses: []int{304}, wantCalls: 1, wantStatus: 304},
		{name: "5xx retries until success", statuses: []int{500, 502, 200}, wantCalls: 3, wantStatus: 200},
		{name: "429 retries until success", statuses: []int{429, 200}, wantCalls: 2, wantStatus: 200},
		{name: "4xx is not retried", statuses: []int{404}, wantCalls: 1, wantStatus: 404},
		{name: "retries exhausted keep last response", statuses: []int{503}, wantCalls: 3, wantStatus: 503, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, calls := registry(t, tt.statuses...)
			client := newClient(clientConfig(srv.URL))

			resp, err := getCountries(context.Background(), t, client)
			defer closeBody(resp)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil {
				t.Fatal("Do() resp = nil, want the last response")
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("calls = %d, want %d", got, tt.wantCalls)
			}
			if tt.wantErr {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != http.StatusText(tt.wantStatus) {
					t.Errorf("body = %q, want it intact after retries", body)
				}
			}
		})
	}
}

func TestDo_RequestBodyPreservedAcrossRetries(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		first := len(bodies) == 1
		mu.Unlock()

		if first {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := newClient(clientConfig(srv.URL))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, srv.URL+"/api/v1/lookups", strings.NewReader(`["ES","FR"]`))
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	closeBody(resp)

	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 2 {
		t.Fatalf("calls = %d, want 2", len(bodies))
	}
	for i, b := range bodies {
		if b != `["ES","FR"]` {
			t.Errorf("attempt %d body = %q", i+1, b)
		}
	}
}

func TestDo_PropagatesHeaders(t *testing.T) {
	t.Parallel()

	got := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Clone()
		w.WriteHeader(http.StatusNotModified)
	}))
	t.Cleanup(srv.Close)

	client := newClient(clientConfig(srv.URL))

	ctx := httpclient.WithRequestID(context.Background(), "req-123")
	ctx = httpclient.WithCorrelationID(ctx, "corr-456")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+countriesPath, http.NoBody)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	req.Header.Set("If-None-Match", `"v7"`)

	resp, err := client.Do(ctx, req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	closeBody(resp)

	h := <-got
	for header, want := range map[string]string{
		"X-Request-ID":     "req-123",
		"X-Correlation-ID": "corr-456",
		"If-None-Match":    `"v7"`,
	} {
		if h.Get(header) != want {
			t.Errorf("%s = %q, want %q", header, h.Get(header), want)
		}
	}
}

func TestDo_CircuitBreakerOpensAndRecovers(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := newClient(clientConfig(srv.URL, tripOnFirstFailure))

	resp, _ := getCountries(context.Background(), t, client)
	closeBody(resp)

	before := calls.Load()
	resp, err := getCountries(context.Background(), t, client)
	closeBody(resp)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("error = %v, want gobreaker.ErrOpenState", err)
	}
	if calls.Load() != before {
		t.Error("registry was called while the breaker was open")
	}

	time.Sleep(150 * time.Millisecond)
	failing.Store(false)

	resp, err = getCountries(context.Background(), t, client)
	defer closeBody(resp)
	if err != nil {
		t.Fatalf("Do() error = %v, want the half-open probe to succeed", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200 after recovery", resp.StatusCode)
	}
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()

	srv, _ := registry(t, http.StatusInternalServerError)
	client := newClient(clientConfig(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := getCountries(ctx, t, client)
	closeBody(resp)
	if err == nil {
		t.Fatal("Do() error = nil, want context error")
	}
}

func TestClient_HealthCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		trip    bool
		wait    time.Duration
		wantErr string
	}{
		{name: "closed"},
		{name: "open", trip: true, wantErr: "failing"},
		{name: "half-open", trip: true, wait: 150 * time.Millisecond, wantErr: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := registry(t, http.StatusInternalServerError)
			client := newClient(clientConfig(srv.URL, tripOnFirstFailure))

			if client.Name() != "reference-registry" {
				t.Errorf("Name() = %q, want reference-registry", client.Name())
			}

			if tt.trip {
				resp, _ := getCountries(context.Background(), t, client)
				closeBody(resp)
			}
			time.Sleep(tt.wait)

			err := client.HealthCheck(context.Background())
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("HealthCheck() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("HealthCheck() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDo_RecordsClientMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "flagplan-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	srv, _ := registry(t, http.StatusOK, http.StatusNotModified, http.StatusNotFound)
	client := httpclient.New(clientConfig(srv.URL), "reference-registry", metrics, nil)

	for range 3 {
		resp, _ := getCountries(context.Background(), t, client)
		closeBody(resp)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	results := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("http.client.request.total data = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(telemetry.AttrResult); ok {
					results[v.AsString()] += dp.Value
				}
			}
		}
	}

	for result, want := range map[string]int64{"success": 1, "not_modified": 1, "error": 1} {
		if results[result] != want {
			t.Errorf("result %q count = %d, want %d (all: %v)", result, results[result], want, results)
		}
	}
}

func TestDo_HonorsRetryAfterUpToMaxInterval(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var firstAt, secondAt atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		switch calls.Add(1) {
		case 1:
			firstAt.Store(time.Now().UnixNano())
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			secondAt.Store(time.Now().UnixNano())
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	client := newClient(clientConfig(srv.URL, func(cfg *config.ClientConfig) {
		cfg.Retry.InitialInterval = time.Millisecond
		cfg.Retry.MaxInterval = 80 * time.Millisecond
	}))

	resp, err := getCountries(context.Background(), t, client)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	closeBody(resp)

	if calls.Load() != 2 {
		t.Fatalf("calls = %d, want 2", calls.Load())
	}
	gap := time.Duration(secondAt.Load() - firstAt.Load())
	if gap < 60*time.Millisecond {
		t.Errorf("retry gap = %v, want the Retry-After hint capped at the 80ms max interval", gap)
	}
	if gap > 5*time.Second {
		t.Errorf("retry gap = %v, want it capped well below the 30s hint", gap)
	}
}

func TestDo_RateLimit(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests", func(t *testing.T) {
		t.Parallel()

		srv, _ := registry(t, http.StatusOK)
		client := newClient(clientConfig(srv.URL, func(cfg *config.ClientConfig) {
			cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 20, BurstSize: 1}
		}))

		start := time.Now()
		for range 3 {
			resp, err := getCountries(context.Background(), t, client)
			if err != nil {
				t.Fatalf("Do() error = %v", err)
			}
			closeBody(resp)
		}

		// Burst 1 at 20 rps: the second and third requests each wait ~50ms.
		if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
			t.Errorf("3 requests took %v, want at least ~100ms", elapsed)
		}
	})

	t.Run("wait honors context", func(t *testing.T) {
		t.Parallel()

		srv, _ := registry(t, http.StatusOK)
		client := newClient(clientConfig(srv.URL, func(cfg *config.ClientConfig) {
			cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.1, BurstSize: 1}
		}))

		resp, err := getCountries(context.Background(), t, client)
		if err != nil {
			t.Fatalf("first Do() error = %v", err)
		}
		closeBody(resp)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		resp, err = getCountries(ctx, t, client)
		closeBody(resp)
		if err == nil {
			t.Fatal("second Do() error = nil, want rate limiter wait error")
		}
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		t.Parallel()

		client := newClient(clientConfig("http://registry.local/"))
		if got := client.BaseURL(); got != "http://registry.local" {
			t.Errorf("BaseURL() = %q, want http://registry.local", got)
		}
	})

	t.Run("nil logger and metrics", func(t *testing.T) {
		t.Parallel()

		srv, _ := registry(t, http.StatusOK)
		client := httpclient.New(clientConfig(srv.URL), "reference-registry", nil, nil)

		resp, err := getCountries(context.Background(), t, client)
		if err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		closeBody(resp)
	})
}
