package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys used on spans and metric points.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrMsg         = attribute.Key("engine.msg")
	AttrEffect      = attribute.Key("engine.effect")
	AttrRoute       = attribute.Key("engine.route")
)

// Metrics holds every instrument the process records into. A nil *Metrics
// is accepted by all recorders and means "don't record".
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// EngineMessagesTotal is labelled with result "applied" or "dropped".
	EngineMessagesTotal  metric.Int64Counter
	EngineEffectsTotal   metric.Int64Counter
	EngineTaskFailures   metric.Int64Counter
	EngineReduceDuration metric.Float64Histogram
	// EngineTerminations counts handler scopes cancelled on navigation.
	EngineTerminations metric.Int64Counter
}

// instruments creates instruments on one meter and keeps the first error.
type instruments struct {
	meter metric.Meter
	err   error
}

func (in *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := in.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	in.keep(name, err)
	return c
}

func (in *instruments) histogram(name, desc string) metric.Float64Histogram {
	h, err := in.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	in.keep(name, err)
	return h
}

func (in *instruments) keep(name string, err error) {
	if err != nil && in.err == nil {
		in.err = fmt.Errorf("creating %s: %w", name, err)
	}
}

// NewMetrics registers the instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	in := &instruments{meter: mp.Meter(scope)}
	m := &Metrics{
		ServerRequestDuration: in.histogram("http.server.request.duration", "Duration of host shell requests"),
		ServerRequestTotal:    in.counter("http.server.request.total", "Host shell requests served", "{request}"),
		ClientRequestDuration: in.histogram("http.client.request.duration", "Duration of delivery API calls"),
		ClientRequestTotal:    in.counter("http.client.request.total", "Delivery API calls made", "{request}"),

		EngineMessagesTotal:  in.counter("engine.messages.total", "Messages folded by the mutation loop", "{message}"),
		EngineEffectsTotal:   in.counter("engine.effects.total", "Effects handed to the dispatcher", "{effect}"),
		EngineTaskFailures:   in.counter("engine.task.failures", "Effect tasks that failed", "{task}"),
		EngineReduceDuration: in.histogram("engine.reduce.duration", "Duration of one reducer step"),
		EngineTerminations:   in.counter("engine.terminations.total", "Handler scopes cancelled on navigation", "{scope}"),
	}
	if in.err != nil {
		return nil, in.err
	}
	return m, nil
}
