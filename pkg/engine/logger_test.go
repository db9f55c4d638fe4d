package engine

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLogMiddleware_EmitsOneLine(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	m := NewLogMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), log)

	w := httptest.NewRecorder()
	m.ServeHTTP(w, httptest.NewRequest("GET", "/generate?keys=firstName", nil))

	out := buf.String()
	if !strings.Contains(out, "method=GET") {
		t.Errorf("log line missing method: %q", out)
	}
	if !strings.Contains(out, "path=/generate") {
		t.Errorf("log line missing path: %q", out)
	}
	if !strings.Contains(out, "status=418") {
		t.Errorf("log line missing downstream status: %q", out)
	}
}

func TestLogMiddleware_SetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	m := NewLogMiddleware(okHandler(), log)

	w := httptest.NewRecorder()
	m.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	id := w.Header().Get("X-Request-Id")
	if id == "" {
		t.Fatal("expected X-Request-Id header")
	}
	if !strings.Contains(buf.String(), id) {
		t.Error("log line should carry the same request ID as the header")
	}

	w2 := httptest.NewRecorder()
	m.ServeHTTP(w2, httptest.NewRequest("GET", "/", nil))
	if w2.Header().Get("X-Request-Id") == id {
		t.Error("request IDs must be unique per request")
	}
}

func TestStatusWriter_DefaultsTo200(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	// Handler writes a body without an explicit WriteHeader.
	m := NewLogMiddleware(payloadHandler("ok"), log)
	m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(buf.String(), "status=200") {
		t.Errorf("implicit status should log as 200: %q", buf.String())
	}
}
