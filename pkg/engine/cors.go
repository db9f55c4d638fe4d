// CORS middleware for the synthd API.

package engine

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/getmockd/synthd/pkg/config"
)

// corsAllowMethods and corsAllowHeaders cover the whole read-only API.
var (
	corsAllowMethods = []string{"GET", "OPTIONS", "HEAD"}
	corsAllowHeaders = []string{"Content-Type", "Accept", "Origin", "X-Requested-With"}
)

// CORSMiddleware wraps a handler with CORS header handling.
type CORSMiddleware struct {
	handler http.Handler
	cfg     *config.CORSConfig
}

// NewCORSMiddleware creates CORS middleware from the configuration.
func NewCORSMiddleware(handler http.Handler, cfg *config.CORSConfig) *CORSMiddleware {
	return &CORSMiddleware{handler: handler, cfg: cfg}
}

// ServeHTTP implements http.Handler.
func (m *CORSMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m.cfg == nil || !m.cfg.Enabled {
		m.handler.ServeHTTP(w, r)
		return
	}

	if allow := m.allowOrigin(r.Header.Get("Origin")); allow != "" {
		w.Header().Set("Access-Control-Allow-Origin", allow)
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsAllowMethods, ", "))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(corsAllowHeaders, ", "))
		maxAge := m.cfg.MaxAge
		if maxAge <= 0 {
			maxAge = 86400
		}
		w.Header().Set("Access-Control-Max-Age", strconv.Itoa(maxAge))
	}

	// Preflight requests are answered here; nothing downstream handles
	// OPTIONS.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	m.handler.ServeHTTP(w, r)
}

// allowOrigin returns the Access-Control-Allow-Origin value for a request
// origin, or empty when the origin is not allowed.
func (m *CORSMiddleware) allowOrigin(requestOrigin string) string {
	for _, origin := range m.cfg.AllowOrigins {
		if origin == "*" {
			return "*"
		}
	}
	for _, origin := range m.cfg.AllowOrigins {
		if origin == requestOrigin {
			return requestOrigin
		}
	}
	return ""
}
