package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// MeterName scopes every instrument this service creates.
const MeterName = "chat-assistant"

// Metrics holds the interaction pipeline instruments.
type Metrics struct {
	InteractionsSubmitted metric.Int64Counter
	QuotaRejections       metric.Int64Counter
	InterpretFailures     metric.Int64Counter
	InterpretDuration     metric.Float64Histogram
	Decisions             metric.Int64Counter
	ActionsApplied        metric.Int64Counter
}

// NewMetrics creates all metric instruments from the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.InteractionsSubmitted, err = meter.Int64Counter("interactions.submitted",
		metric.WithDescription("Interactions created from user text"),
	)
	if err != nil {
		return nil, err
	}

	m.QuotaRejections, err = meter.Int64Counter("quota.rejections",
		metric.WithDescription("Submissions rejected by the daily AI quota"),
	)
	if err != nil {
		return nil, err
	}

	m.InterpretFailures, err = meter.Int64Counter("interpreter.failures",
		metric.WithDescription("AI interpretations that failed and were refunded"),
	)
	if err != nil {
		return nil, err
	}

	m.InterpretDuration, err = meter.Float64Histogram("interpreter.duration",
		metric.WithDescription("AI interpretation duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	m.Decisions, err = meter.Int64Counter("interactions.decisions",
		metric.WithDescription("Interaction decisions by outcome"),
	)
	if err != nil {
		return nil, err
	}

	m.ActionsApplied, err = meter.Int64Counter("actions.applied",
		metric.WithDescription("Actions persisted by approved interactions, by kind"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// NewGlobalMetrics builds Metrics on the globally registered meter provider.
func NewGlobalMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter(MeterName))
}

// NewNoopMetrics returns instruments that record nothing.
func NewNoopMetrics() *Metrics {
	m, err := NewMetrics(noop.NewMeterProvider().Meter(MeterName))
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) RecordDecision(ctx context.Context, outcome string, auto bool) {
	m.Decisions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Bool("auto", auto),
	))
}

func (m *Metrics) RecordActionApplied(ctx context.Context, kind string) {
	m.ActionsApplied.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *Metrics) RecordInterpret(ctx context.Context, elapsed time.Duration, ok bool) {
	m.InterpretDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.Bool("ok", ok)))
	if !ok {
		m.InterpretFailures.Add(ctx, 1)
	}
}
