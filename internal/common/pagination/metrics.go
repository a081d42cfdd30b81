package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts list requests.
	// Labels: resource, status (HTTP status code), page_range (1-10, 11-50, 51-100, 100+)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_pagination_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"resource", "status", "page_range"},
	)

	// DurationSeconds tracks list duration by layer.
	// Labels: resource, operation (handler, service, repository)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_pagination_duration_seconds",
			Help:    "Request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"resource", "operation"},
	)

	// TotalCount tracks the last observed record count per resource.
	// Updated on each COUNT query.
	TotalCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_total_count",
			Help: "Current total number of records",
		},
		[]string{"resource"},
	)

	// ErrorsTotal counts pagination errors.
	// Labels: resource, type (validation, database, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"resource", "type"},
	)
)

// RecordRequest records a list request.
func RecordRequest(resource string, statusCode int, pageIndex int) {
	RequestsTotal.WithLabelValues(resource, strconv.Itoa(statusCode), pageRangeBucket(pageIndex)).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(resource, operation string, seconds float64) {
	DurationSeconds.WithLabelValues(resource, operation).Observe(seconds)
}

// UpdateTotalCount sets the record count gauge for resource.
func UpdateTotalCount(resource string, count int64) {
	TotalCount.WithLabelValues(resource).Set(float64(count))
}

// RecordError records an error metric.
// errorType should be one of: "validation", "database", "timeout"
func RecordError(resource, errorType string) {
	ErrorsTotal.WithLabelValues(resource, errorType).Inc()
}

func pageRangeBucket(pageIndex int) string {
	switch {
	case pageIndex <= 10:
		return "1-10"
	case pageIndex <= 50:
		return "11-50"
	case pageIndex <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
