package instrument

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Counter names, fixed per the metrics contract.
const (
	metricSuccess        = "invoke.success"
	metricFailure        = "invoke.failure"
	metricConnectFailure = "invoke.connect_failure"
	metricDuration       = "invoke.duration_ms"
)

// durationBoundaries gives the duration timer millisecond resolution at
// the low end and a multi-minute ceiling.
var durationBoundaries = []float64{
	1, 5, 10, 25, 50, 100, 250, 500,
	1000, 2500, 5000, 10000, 30000, 60000, 180000, 300000,
}

// Instruments holds the process-wide counters and the duration timer
// the sinks report into. Aggregates accumulate across invocations,
// keyed by the (category, operation) label.
type Instruments struct {
	success        metric.Int64Counter
	failure        metric.Int64Counter
	connectFailure metric.Int64Counter
	duration       metric.Float64Histogram
}

// NewInstruments creates the instruments on the given meter.
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	success, err := meter.Int64Counter(
		metricSuccess,
		metric.WithDescription("Successful invocation attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	failure, err := meter.Int64Counter(
		metricFailure,
		metric.WithDescription("Failed invocation attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	connectFailure, err := meter.Int64Counter(
		metricConnectFailure,
		metric.WithDescription("Failed attempts whose root cause is a connection failure"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		metricDuration,
		metric.WithDescription("Per-attempt duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(durationBoundaries...),
	)
	if err != nil {
		return nil, err
	}

	return &Instruments{
		success:        success,
		failure:        failure,
		connectFailure: connectFailure,
		duration:       duration,
	}, nil
}

func (i *Instruments) recordDuration(ctx context.Context, desc Descriptor, elapsed time.Duration) {
	ms := float64(elapsed) / float64(time.Millisecond)
	i.duration.Record(ctx, ms, labelOf(desc))
}

func (i *Instruments) addSuccess(ctx context.Context, desc Descriptor) {
	i.success.Add(ctx, 1, labelOf(desc))
}

func (i *Instruments) addFailure(ctx context.Context, desc Descriptor, err error) {
	if IsConnectFailure(err) {
		i.connectFailure.Add(ctx, 1, labelOf(desc))
	}
	i.failure.Add(ctx, 1, labelOf(desc))
}

func labelOf(desc Descriptor) metric.MeasurementOption {
	attrs := []attribute.KeyValue{
		attribute.String("invoke.operation", desc.Operation),
	}
	if desc.Category != "" {
		attrs = append(attrs, attribute.String("invoke.category", desc.Category))
	}
	return metric.WithAttributes(attrs...)
}
