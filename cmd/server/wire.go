package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/clients/acl"
	adapthttp "github.com/protocolo-ceremonial/flagplan/internal/adapters/http"
	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/handlers"
	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/middleware"
	"github.com/protocolo-ceremonial/flagplan/internal/adapters/reference/embedded"
	"github.com/protocolo-ceremonial/flagplan/internal/app"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/config"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/health"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/httpclient"
	"github.com/protocolo-ceremonial/flagplan/internal/platform/telemetry"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// referenceSource is a reference data backend that also reports its own
// health. The embedded table and the registry client both satisfy it.
type referenceSource interface {
	ports.ReferenceClient
	ports.HealthChecker
}

// wire registers every provider. Nothing is constructed until invoked.
func wire(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, provideReferenceSource)
	do.Provide(injector, providePlanService)
	do.Provide(injector, func(i do.Injector) (ports.PlanService, error) {
		svc, err := do.Invoke[*app.PlanService](i)
		return svc, err
	})
	do.Provide(injector, provideHealthRegistry)
	do.Provide(injector, provideRouter)
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
	return injector
}

func provideReferenceSource(i do.Injector) (referenceSource, error) {
	cfg := do.MustInvoke[*config.Config](i)
	if cfg.Reference.Source == config.SourceEmbedded {
		table, err := embedded.New()
		if err != nil {
			return nil, fmt.Errorf("embedded reference table: %w", err)
		}
		return table, nil
	}

	logger := do.MustInvoke[*slog.Logger](i)
	client := httpclient.New(&cfg.Reference.Client, "reference-registry", do.MustInvoke[*telemetry.Metrics](i), logger)
	return acl.NewReferenceClient(client, logger), nil
}

func providePlanService(i do.Injector) (*app.PlanService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return app.NewPlanService(do.MustInvoke[referenceSource](i), do.MustInvoke[*slog.Logger](i),
		app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		app.WithCompareWorkers(cfg.Planner.CompareWorkers),
		app.WithMaxDelegations(cfg.Planner.MaxDelegations),
		app.WithCatalogTTL(cfg.Reference.CacheTTL),
	), nil
}

// provideHealthRegistry makes readiness depend on the reference source and
// on the planner's catalog.
func provideHealthRegistry(i do.Injector) (ports.HealthRegistry, error) {
	registry := health.New()
	registry.Register(do.MustInvoke[referenceSource](i))
	registry.Register(do.MustInvoke[*app.PlanService](i))
	return registry, nil
}

func provideRouter(i do.Injector) (nethttp.Handler, error) {
	cfg := do.MustInvoke[*config.Config](i)
	planner := do.MustInvoke[ports.PlanService](i)

	return adapthttp.NewRouter(adapthttp.Handlers{
		Plan:    handlers.NewPlanHandler(planner),
		Country: handlers.NewCountryHandler(planner),
		Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
	}, middleware.Standard(do.MustInvoke[*slog.Logger](i), do.MustInvoke[*telemetry.Metrics](i), cfg.Server.RequestTimeout)), nil
}
