// Package telemetry installs the OpenTelemetry meter provider used by the
// packing metrics.
package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// ShutdownFunc flushes pending metrics and releases the provider.
type ShutdownFunc func(context.Context) error

// InitStdout registers a global meter provider that writes metrics to w as
// JSON. Metrics are exported periodically and once more on shutdown.
func InitStdout(w io.Writer) (ShutdownFunc, error) {
	exporter, err := stdoutmetric.New(
		stdoutmetric.WithWriter(w),
		stdoutmetric.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter)),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}
