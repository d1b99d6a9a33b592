// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name for call metrics.
const meterName = "code.hybscloud.com/kall/middleware"

// Metrics returns middleware that records per-call metrics using the
// global OTel MeterProvider. If no MeterProvider is configured, noop
// instruments are used and this middleware becomes a pass-through.
//
// Instruments:
//   - kall.call.duration (Float64Histogram): call time in seconds,
//     with attribute: call_name
//   - kall.call.count (Int64Counter): total calls,
//     with attribute: call_name
func Metrics[R, A any](name string) Middleware[R, A] {
	return MetricsWithMeter[R, A](otel.Meter(meterName), name)
}

// MetricsWithMeter returns metrics middleware using the provided meter.
// This variant allows injecting a specific MeterProvider for testing.
func MetricsWithMeter[R, A any](meter metric.Meter, name string) Middleware[R, A] {
	// Instruments are created once at middleware construction time; the
	// OTel API returns noop instruments on error, so the middleware
	// degrades to a pass-through.
	duration, dErr := meter.Float64Histogram(
		"kall.call.duration",
		metric.WithDescription("Duration of container calls in seconds"),
		metric.WithUnit("s"),
	)
	_ = dErr

	calls, cErr := meter.Int64Counter(
		"kall.call.count",
		metric.WithDescription("Total number of container calls"),
		metric.WithUnit("{call}"),
	)
	_ = cErr

	attrs := metric.WithAttributes(attribute.String("call_name", name))

	return func(next func(A) R) func(A) R {
		return func(v A) R {
			start := time.Now()
			out := next(v)
			elapsed := time.Since(start).Seconds()

			duration.Record(context.Background(), elapsed, attrs)
			calls.Add(context.Background(), 1, attrs)

			return out
		}
	}
}
