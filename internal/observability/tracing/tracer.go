package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of all catalog spans.
const TracerName = "catalog-api"

// GetTracer returns the catalog tracer from the current global provider.
func GetTracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// NewProvider builds a TracerProvider tagged with the service name and version.
// Extra options, such as exporters, are appended.
func NewProvider(service, version string, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(
		attribute.String("service.name", service),
		attribute.String("service.version", version),
	)
	base := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	}
	return sdktrace.NewTracerProvider(append(base, opts...)...)
}

// Setup installs a provider from NewProvider and the trace-context propagator as
// globals. The returned function flushes and stops the provider.
func Setup(service, version string, opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	tp := NewProvider(service, version, opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp.Shutdown
}
