// Package observability groups the logging, metrics and tracing support of the
// catalog API.
//
// Subpackages:
//   - logging: slog logger construction and request-scoped loggers
//   - metrics: catalog write and database query metrics
//   - tracing: OpenTelemetry tracer, provider setup and HTTP middleware
package observability
