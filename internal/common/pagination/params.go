package pagination

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Query parameter names accepted by list endpoints.
const (
	QueryPageIndex = "pageIndex"
	QueryPageSize  = "pageSize"
)

// ErrInvalidParams is returned for malformed or out-of-range pagination parameters.
var ErrInvalidParams = errors.New("invalid pagination parameters")

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	PageIndex int // 1-based page index
	PageSize  int // Items per page
}

// ParseQueryParams parses pageIndex and pageSize from the request query string.
// Missing parameters take the configured defaults.
//
// Returns an error wrapping ErrInvalidParams if either value is not an integer,
// is less than 1, or if a bounded config.MaxPageSize is exceeded.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		PageIndex: config.DefaultPageIndex,
		PageSize:  config.DefaultPageSize,
	}

	q := r.URL.Query()

	if s := q.Get(QueryPageIndex); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return params, fmt.Errorf("%w: pageIndex must be a positive integer", ErrInvalidParams)
		}
		params.PageIndex = v
	}

	if s := q.Get(QueryPageSize); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return params, fmt.Errorf("%w: pageSize must be a positive integer", ErrInvalidParams)
		}
		if config.MaxPageSize > 0 && v > config.MaxPageSize {
			return params, fmt.Errorf("%w: pageSize must be between 1 and %d", ErrInvalidParams, config.MaxPageSize)
		}
		params.PageSize = v
	}

	return params, nil
}
