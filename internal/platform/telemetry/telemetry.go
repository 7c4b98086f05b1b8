// Package telemetry sets up OpenTelemetry tracing and metrics for flagplan,
// exporting to stdout in development and to an OTLP/HTTP collector in
// production, and registers the server, registry client and plan instruments.
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	svc := app.NewPlanService(ref, logger, app.WithMetrics(p.Metrics))
package telemetry

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationScope names the meter that owns every instrument.
const instrumentationScope = "github.com/protocolo-ceremonial/flagplan"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrEventType   = attribute.Key("plan.event")
	AttrVenueType   = attribute.Key("plan.venue")
	AttrCriterion   = attribute.Key("plan.criterion")
	AttrService     = attribute.Key("service.name")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	PlanGeneratedTotal metric.Int64Counter
	PlanFlagCount      metric.Int64Histogram
	PlanWarningTotal   metric.Int64Counter

	// attrs are attached to every plan measurement.
	attrs []attribute.KeyValue
}

// PlanAttributes returns the attributes shared by every plan measurement,
// followed by extra.
func (m *Metrics) PlanAttributes(extra ...attribute.KeyValue) metric.MeasurementOption {
	all := make([]attribute.KeyValue, 0, len(m.attrs)+len(extra))
	all = append(all, m.attrs...)
	all = append(all, extra...)
	return metric.WithAttributes(all...)
}

// NewMetrics registers every instrument on mp. Plan measurements carry the
// service name as an attribute.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(instrumentationScope)}

	m := &Metrics{
		ServerRequestDuration: r.histogram("http.server.request.duration", "Duration of incoming HTTP requests", "s"),
		ServerRequestTotal:    r.counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: r.histogram("http.client.request.duration", "Duration of calls to the reference registry", "s"),
		ClientRequestTotal:    r.counter("http.client.request.total", "Total number of calls to the reference registry", "{request}"),
		PlanGeneratedTotal:    r.counter("plan.generated.total", "Total number of protocol plans generated", "{plan}"),
		PlanFlagCount:         r.intHistogram("plan.flags", "Number of flags placed per generated plan", "{flag}"),
		PlanWarningTotal:      r.counter("plan.warning.total", "Actors ordered alphabetically for lack of a reference value", "{warning}"),
		attrs:                 []attribute.KeyValue{AttrService.String(serviceName)},
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

// registrar creates instruments on one meter and keeps every failure.
type registrar struct {
	meter metric.Meter
	err   error
}

func (r *registrar) fail(name string, err error) {
	r.err = errors.Join(r.err, fmt.Errorf("creating %s: %w", name, err))
}

func (r *registrar) histogram(name, desc, unit string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.fail(name, err)
	}
	return h
}

func (r *registrar) intHistogram(name, desc, unit string) metric.Int64Histogram {
	h, err := r.meter.Int64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.fail(name, err)
	}
	return h
}

func (r *registrar) counter(name, desc, unit string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		r.fail(name, err)
	}
	return c
}
