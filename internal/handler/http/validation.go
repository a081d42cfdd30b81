package http

import (
	"net/http"
)

const (
	// DefaultMaxBodyBytes bounds article and product payloads.
	DefaultMaxBodyBytes int64 = 1 << 20

	maxPathLength = 2048
)

// InputValidation returns middleware that rejects paths longer than 2KB with 414 and
// caps the request body at maxBodyBytes. A non-positive limit uses DefaultMaxBodyBytes.
// Handlers see an oversized body as a decode error.
func InputValidation(maxBodyBytes int64) Middleware {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestURITooLong)
				_, _ = w.Write([]byte(`{"error":"URI too long"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
		})
	}
}
