// Per-IP rate limiting for the synthd API.

package engine

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/getmockd/synthd/pkg/config"
)

// Rate limiter defaults applied when the configuration leaves them zero.
const (
	defaultRateLimitRPS   float64 = 10
	defaultRateLimitBurst int     = 20
)

// bucketCleanupInterval is how often idle client buckets are dropped, and
// bucketTTL how long a bucket may sit idle before it is dropped.
const (
	bucketCleanupInterval = time.Minute
	bucketTTL             = time.Minute
)

// tokenBucket tracks one client's budget.
type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	lastUpdate time.Time
}

// RateLimiter implements per-IP token-bucket rate limiting.
type RateLimiter struct {
	rps   float64
	burst int

	mu      sync.RWMutex
	buckets map[string]*tokenBucket

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewRateLimiter creates a limiter from the configuration and starts its
// cleanup goroutine. Stop must be called on shutdown.
func NewRateLimiter(cfg *config.RateLimitConfig) *RateLimiter {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRateLimitRPS
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = defaultRateLimitBurst
	}

	rl := &RateLimiter{
		rps:       rps,
		burst:     burst,
		buckets:   make(map[string]*tokenBucket),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// allow reports whether a request from ip may proceed, with the remaining
// budget and a retry-after/reset hint in seconds.
func (rl *RateLimiter) allow(ip string) (bool, int, int64) {
	now := time.Now()

	rl.mu.RLock()
	bucket, ok := rl.buckets[ip]
	rl.mu.RUnlock()

	if !ok {
		rl.mu.Lock()
		bucket, ok = rl.buckets[ip]
		if !ok {
			bucket = &tokenBucket{tokens: float64(rl.burst), lastUpdate: now}
			rl.buckets[ip] = bucket
		}
		rl.mu.Unlock()
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	bucket.tokens += now.Sub(bucket.lastUpdate).Seconds() * rl.rps
	if bucket.tokens > float64(rl.burst) {
		bucket.tokens = float64(rl.burst)
	}
	bucket.lastUpdate = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		remaining := int(bucket.tokens)
		reset := int64((float64(rl.burst) - bucket.tokens) / rl.rps)
		if reset < 1 {
			reset = 1
		}
		return true, remaining, reset
	}

	retryAfter := int64((1 - bucket.tokens) / rl.rps)
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, 0, retryAfter
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(bucketCleanupInterval)
	defer ticker.Stop()
	defer close(rl.stoppedCh)

	for {
		select {
		case <-ticker.C:
			rl.dropIdle()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) dropIdle() {
	cutoff := time.Now().Add(-bucketTTL)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, bucket := range rl.buckets {
		bucket.mu.Lock()
		if bucket.lastUpdate.Before(cutoff) {
			delete(rl.buckets, ip)
		}
		bucket.mu.Unlock()
	}
}

// Stop terminates the cleanup goroutine and waits for it to exit.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
	<-rl.stoppedCh
}

// clientIP extracts the client address from RemoteAddr. Forwarding headers
// are not consulted; synthd is expected to face clients directly.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// RateLimitMiddleware wraps a handler with per-IP rate limiting.
type RateLimitMiddleware struct {
	handler http.Handler
	limiter *RateLimiter
}

// NewRateLimitMiddleware creates rate limiting middleware. A nil limiter
// passes every request through.
func NewRateLimitMiddleware(handler http.Handler, limiter *RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{handler: handler, limiter: limiter}
}

// ServeHTTP implements http.Handler.
func (m *RateLimitMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if m.limiter == nil {
		m.handler.ServeHTTP(w, r)
		return
	}

	allowed, remaining, resetOrRetry := m.limiter.allow(clientIP(r))

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(m.limiter.burst))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

	if allowed {
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetOrRetry, 10))
		m.handler.ServeHTTP(w, r)
		return
	}

	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Unix()+resetOrRetry, 10))
	w.Header().Set("Retry-After", strconv.FormatInt(resetOrRetry, 10))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"rate_limit_exceeded","message":"Too many requests. Please slow down."}`))
}
