package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that cancels the request context after d and answers
// 504 if the handler has not written anything by then. Cancellation reaches the
// repositories through the context, so abandoned queries stop as well.
// Panics in next are re-raised on the calling goroutine.
// A non-positive d disables the timeout.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			tw := &timeoutWriter{w: w, h: make(http.Header)}
			done := make(chan struct{})
			panicChan := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicChan <- p
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicChan:
				// Re-raise on the serving goroutine so Recover sees it.
				panic(p)
			case <-done:
			case <-ctx.Done():
				tw.mu.Lock()
				tw.timedOut = true
				if !tw.written {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_, _ = w.Write([]byte(`{"error":"request timeout"}`))
				}
				tw.mu.Unlock()
			}
		})
	}
}

// timeoutWriter buffers headers so a handler still running after the deadline
// never touches the real response, and drops its writes once 504 has been sent.
type timeoutWriter struct {
	w http.ResponseWriter
	h http.Header

	mu       sync.Mutex
	timedOut bool
	written  bool
}

func (w *timeoutWriter) Header() http.Header { return w.h }

func (w *timeoutWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.timedOut && !w.written {
		w.writeHeaderLocked(statusCode)
	}
}

func (w *timeoutWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !w.written {
		w.writeHeaderLocked(http.StatusOK)
	}
	return w.w.Write(data)
}

func (w *timeoutWriter) writeHeaderLocked(statusCode int) {
	w.written = true
	dst := w.w.Header()
	for k, vv := range w.h {
		dst[k] = vv
	}
	w.w.WriteHeader(statusCode)
}
