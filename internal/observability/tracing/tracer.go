// Package tracing wires OpenTelemetry tracing into the HTTP surface.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the process-wide tracer for this service.
var tracer = otel.Tracer("crisp-ai")

// GetTracer returns the tracer used to create spans:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
