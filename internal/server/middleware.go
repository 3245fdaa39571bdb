package server

import (
	"net/http"
	"time"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/observability"
)

// requestLogger records structured access logs with method, path,
// status, and latency, and feeds the server observability hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.status, duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"duration", duration)
	})
}

// recoverer converts handler panics into 500 responses so a single bad
// request cannot take the server down.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				observability.Server().OnPanic(r.Context(), r.Method, r.URL.Path, rec)
				s.logger.Error("panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec)
				writeJSON(w, http.StatusInternalServerError, errorResponse{
					Error: "internal server error",
					Code:  string(errors.ErrCodeInternal),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// statusWriter captures the status code for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
