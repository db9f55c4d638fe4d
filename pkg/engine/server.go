// Package engine provides the synthd HTTP server: route registration, the
// middleware chain, and process lifecycle. All generation semantics live in
// pkg/genspec and pkg/shape; the engine only parses query parameters and
// writes responses.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/getmockd/synthd/pkg/config"
	"github.com/getmockd/synthd/pkg/logging"
	"github.com/getmockd/synthd/pkg/metrics"
)

// Server is the synthd HTTP server.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	version    string
	handler    *Handler
	httpServer *http.Server
	limiter    *RateLimiter

	mu        sync.Mutex
	running   bool
	startTime time.Time
}

// New creates a server from the configuration. A nil logger disables
// operational logging.
func New(cfg *config.Config, log *slog.Logger, version string) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}

	registry := metrics.NewRegistry()
	s := &Server{
		cfg:     cfg,
		log:     log,
		version: version,
	}
	s.handler = NewHandler(cfg, log, registry, s.uptime, version)

	// Middleware chain, outermost first: logging, CORS, rate limit, gzip.
	var h http.Handler = s.handler
	h = NewGzipMiddleware(h)
	if cfg.RateLimit.Enabled {
		s.limiter = NewRateLimiter(&cfg.RateLimit)
		h = NewRateLimitMiddleware(h, s.limiter)
	}
	h = NewCORSMiddleware(h, &cfg.CORS)
	h = NewLogMiddleware(h, log)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSec) * time.Second,
	}
	return s
}

// Start runs the server until the listener fails or Shutdown is called.
// It blocks; http.ErrServerClosed is swallowed as the normal exit.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}
	s.running = true
	s.startTime = time.Now()
	s.mu.Unlock()

	s.log.Info("server starting",
		"addr", s.httpServer.Addr,
		"maxCount", s.cfg.MaxCount,
		"rateLimit", s.cfg.RateLimit.Enabled,
		"version", s.version,
	)

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops background work.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	if s.limiter != nil {
		s.limiter.Stop()
	}

	s.log.Info("server stopping")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}
