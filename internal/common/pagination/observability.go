package pagination

import (
	"log/slog"
	"time"
)

// LogResponse logs a served page.
func LogResponse(logger *slog.Logger, resource string, params Params, returned int, duration time.Duration, statusCode int) {
	logger.Info("paginated response",
		slog.String("resource", resource),
		slog.Int("page_index", params.PageIndex),
		slog.Int("page_size", params.PageSize),
		slog.Int("returned_count", returned),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Int("status", statusCode))
}

// LogError logs a failed list request.
func LogError(logger *slog.Logger, resource string, params Params, err error, errorType string) {
	logger.Error("pagination error",
		slog.String("resource", resource),
		slog.Int("page_index", params.PageIndex),
		slog.Int("page_size", params.PageSize),
		slog.String("error", err.Error()),
		slog.String("error_type", errorType))
}
