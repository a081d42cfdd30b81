package metrics

import (
	"errors"
	"time"

	"catalog-api/internal/domain/entity"
)

// Write operations.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordWrite counts one write attempt. The result label is derived from err.
func RecordWrite(resource, operation string, err error) {
	CatalogWritesTotal.WithLabelValues(resource, operation, WriteResult(err)).Inc()
}

// WriteResult classifies err into a low-cardinality label value.
func WriteResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, entity.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, entity.ErrNotFound):
		return "not_found"
	case errors.Is(err, entity.ErrDuplicate):
		return "duplicate"
	default:
		return "error"
	}
}

// RecordDBQuery observes a query or exec duration. operation is "query" or "exec".
func RecordDBQuery(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}
