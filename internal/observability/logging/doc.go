// Package logging builds the process slog.Logger and request-scoped loggers.
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//
//	func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    log := logging.WithRequestID(r.Context(), h.Logger)
//	    log.Debug("listing products")
//	}
package logging
