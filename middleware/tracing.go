// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope name for call tracing.
const tracerName = "code.hybscloud.com/kall/middleware"

// Traced returns middleware that wraps each call in an OpenTelemetry
// span. It applies to signatures whose argument is a context.Context:
// the span's context is what the wrapped func receives, so downstream
// spans nest under it. If no TracerProvider is configured globally, the
// noop tracer makes this a pass-through.
func Traced[R any](name string) Middleware[R, context.Context] {
	return TracedWithTracer[R](otel.Tracer(tracerName), name)
}

// TracedWithTracer returns tracing middleware using the provided
// tracer. This variant allows injecting a specific TracerProvider for
// testing or when multiple providers are in use.
func TracedWithTracer[R any](tracer trace.Tracer, name string) Middleware[R, context.Context] {
	return func(next func(context.Context) R) func(context.Context) R {
		return func(ctx context.Context) R {
			ctx, span := tracer.Start(ctx, "kall.call",
				trace.WithAttributes(attribute.String("call_name", name)),
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			out := next(ctx)
			span.SetStatus(codes.Ok, "")
			return out
		}
	}
}
