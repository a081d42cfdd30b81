// Package tracing wires OpenTelemetry into the catalog API.
//
// Setup installs a TracerProvider and the W3C trace-context propagator; Middleware
// opens a server span per request; GetTracer is used for internal spans such as the
// read-through cache lookups.
//
//	shutdown := tracing.Setup("catalog-api", version)
//	defer func() { _ = shutdown(ctx) }()
//
//	ctx, span := tracing.GetTracer().Start(ctx, "readthrough.GetPage")
//	defer span.End()
package tracing
