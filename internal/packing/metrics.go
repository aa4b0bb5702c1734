package packing

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("apollonian.packing")

var (
	acceptedTotal  metric.Int64Counter
	rejectedTotal  metric.Int64Counter
	processedTotal metric.Int64Counter
	passLatency    metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		acceptedTotal, err = meter.Int64Counter(
			"packing_circles_accepted_total",
			metric.WithDescription("Circles accepted into the registry by the scheduler"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		rejectedTotal, err = meter.Int64Counter(
			"packing_candidates_rejected_total",
			metric.WithDescription("Candidate circles rejected by the validity filter"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		processedTotal, err = meter.Int64Counter(
			"packing_triples_processed_total",
			metric.WithDescription("Tangent triples expanded"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		passLatency, err = meter.Float64Histogram(
			"packing_pass_duration_seconds",
			metric.WithDescription("Duration of one generation pass"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordPass records the counters of one completed pass.
func recordPass(ctx context.Context, s PassStats) {
	if err := initMetrics(); err != nil {
		return
	}

	passLatency.Record(ctx, s.Duration.Seconds())
	processedTotal.Add(ctx, int64(s.Processed))
	acceptedTotal.Add(ctx, int64(s.Accepted))

	for reason, n := range map[Verdict]int{
		RejectTooSmall:   s.TooSmall,
		RejectDuplicate:  s.Duplicate,
		RejectNotTangent: s.NotTangent,
	} {
		if n == 0 {
			continue
		}
		rejectedTotal.Add(ctx, int64(n), metric.WithAttributes(attribute.String("reason", reason.String())))
	}
}
