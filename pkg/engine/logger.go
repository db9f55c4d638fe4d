// Access logging for the synthd API.

package engine

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// LogMiddleware emits one slog line per request with a generated request ID.
type LogMiddleware struct {
	handler http.Handler
	log     *slog.Logger
}

// NewLogMiddleware wraps a handler with access logging.
func NewLogMiddleware(handler http.Handler, log *slog.Logger) *LogMiddleware {
	return &LogMiddleware{handler: handler, log: log}
}

// ServeHTTP implements http.Handler.
func (m *LogMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	m.handler.ServeHTTP(sw, r)

	m.log.Info("request",
		"id", requestID,
		"method", r.Method,
		"path", r.URL.Path,
		"status", sw.status,
		"duration", time.Since(start).Round(time.Microsecond),
		"remote", r.RemoteAddr,
	)
}

// statusWriter captures the status code for the access log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
