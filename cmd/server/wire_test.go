package main

import (
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/protocolo-ceremonial/flagplan/internal/adapters/http"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
)

func TestWire_EmbeddedSource(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Server:    config.ServerConfig{Host: "127.0.0.1", Port: 0, RequestTimeout: 5 * time.Second},
		Reference: config.ReferenceConfig{Source: config.SourceEmbedded, CacheTTL: time.Minute},
		Planner:   config.PlannerConfig{CompareWorkers: 2, MaxDelegations: 60},
	}
	injector := wire(cfg, slog.New(slog.DiscardHandler), nil)

	if _, err := do.Invoke[*adapthttp.Server](injector); err != nil {
		t.Fatalf("Invoke[*Server]() error = %v", err)
	}
	router := do.MustInvoke[nethttp.Handler](injector)

	for _, target := range []string{"/health/live", "/health/ready", "/api/v1/countries"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, target, nethttp.NoBody))
		if rec.Code != nethttp.StatusOK {
			t.Errorf("GET %s = %d, want 200; body = %s", target, rec.Code, rec.Body)
		}
	}
}
