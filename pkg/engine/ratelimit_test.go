package engine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getmockd/synthd/pkg/config"
)

func newTestLimiter(t *testing.T, rps float64, burst int) *RateLimiter {
	t.Helper()
	rl := NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: rps,
		BurstSize:         burst,
	})
	t.Cleanup(rl.Stop)
	return rl
}

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := newTestLimiter(t, 0.001, 3)

	for i := 0; i < 3; i++ {
		allowed, _, _ := rl.allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}
	allowed, remaining, retryAfter := rl.allow("10.0.0.1")
	if allowed {
		t.Error("request beyond burst should be denied")
	}
	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
	if retryAfter < 1 {
		t.Errorf("retryAfter = %d, want >= 1", retryAfter)
	}
}

func TestRateLimiter_PerIPIsolation(t *testing.T) {
	rl := newTestLimiter(t, 0.001, 1)

	if allowed, _, _ := rl.allow("10.0.0.1"); !allowed {
		t.Fatal("first client's first request should pass")
	}
	if allowed, _, _ := rl.allow("10.0.0.1"); allowed {
		t.Fatal("first client should now be limited")
	}
	if allowed, _, _ := rl.allow("10.0.0.2"); !allowed {
		t.Error("second client must have its own bucket")
	}
}

func TestRateLimiter_ZeroConfigUsesDefaults(t *testing.T) {
	rl := NewRateLimiter(&config.RateLimitConfig{Enabled: true})
	defer rl.Stop()

	if rl.rps != defaultRateLimitRPS {
		t.Errorf("rps = %v, want default %v", rl.rps, defaultRateLimitRPS)
	}
	if rl.burst != defaultRateLimitBurst {
		t.Errorf("burst = %d, want default %d", rl.burst, defaultRateLimitBurst)
	}
}

func TestRateLimitMiddleware_Headers(t *testing.T) {
	rl := newTestLimiter(t, 0.001, 2)
	m := NewRateLimitMiddleware(okHandler(), rl)

	r := httptest.NewRequest("GET", "/generate", nil)
	r.RemoteAddr = "10.0.0.9:1234"

	w := httptest.NewRecorder()
	m.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("X-RateLimit-Limit"); got != "2" {
		t.Errorf("X-RateLimit-Limit = %q, want 2", got)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "1" {
		t.Errorf("X-RateLimit-Remaining = %q, want 1", got)
	}
}

func TestRateLimitMiddleware_DenialEnvelope(t *testing.T) {
	rl := newTestLimiter(t, 0.001, 1)
	m := NewRateLimitMiddleware(okHandler(), rl)

	r := httptest.NewRequest("GET", "/generate", nil)
	r.RemoteAddr = "10.0.0.9:1234"

	m.ServeHTTP(httptest.NewRecorder(), r)

	w := httptest.NewRecorder()
	m.ServeHTTP(w, r)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got == "" {
		t.Error("expected Retry-After header")
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] != "rate_limit_exceeded" {
		t.Errorf("error = %q, want rate_limit_exceeded", body["error"])
	}
}

func TestRateLimitMiddleware_NilLimiterPassesThrough(t *testing.T) {
	m := NewRateLimitMiddleware(okHandler(), nil)

	w := httptest.NewRecorder()
	m.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.7:5555"
	if got := clientIP(r); got != "192.0.2.7" {
		t.Errorf("clientIP = %q, want 192.0.2.7", got)
	}

	r.RemoteAddr = "no-port-here"
	if got := clientIP(r); got != "no-port-here" {
		t.Errorf("clientIP = %q, want raw RemoteAddr", got)
	}
}
