package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/encore/pkg/idx"
)

// Observer is told about every completed request. The router uses it to feed
// request metrics without slogx knowing about prometheus.
type Observer func(r *http.Request, status int, elapsed time.Duration)

// HTTPMiddleware logs requests and attaches a contextual logger into request
// context. Observers run after the request line is logged.
func HTTPMiddleware(base *slog.Logger, observers ...Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = idx.New().String()
			}
			rw.Header().Set("X-Request-ID", reqID)

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			r = r.WithContext(WithContext(r.Context(), logger))
			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			logger.Info("http_request",
				"status", rw.status,
				"duration_ms", elapsed.Milliseconds(),
				"user_agent", r.UserAgent(),
			)

			for _, observe := range observers {
				observe(r, rw.status, elapsed)
			}
		})
	}
}

type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
