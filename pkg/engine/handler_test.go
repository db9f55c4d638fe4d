package engine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/getmockd/synthd/pkg/config"
	"github.com/getmockd/synthd/pkg/logging"
	"github.com/getmockd/synthd/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(config.Default(), logging.Nop(), metrics.NewRegistry(),
		func() time.Duration { return 5 * time.Second }, "test")
}

func do(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
	return w
}

func decodeErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	require.Contains(t, body, "error")
	require.Contains(t, body, "message")
	return body
}

func TestGenerate_ByKeys(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/generate?keys=firstName,lastName,email")

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Len(t, rec, 3)
}

func TestGenerate_KeyOrderMatchesRequest(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/generate?keys=email,firstName")

	body := w.Body.String()
	assert.Less(t, strings.Index(body, `"email"`), strings.Index(body, `"firstName"`),
		"JSON field order must follow the request order: %s", body)
}

func TestGenerate_SelectorErrors(t *testing.T) {
	h := newTestHandler(t)

	t.Run("no selector", func(t *testing.T) {
		w := do(t, h, "/generate")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErrorEnvelope(t, w)
		assert.Equal(t, "invalid_request", body["error"])
	})

	t.Run("two selectors", func(t *testing.T) {
		w := do(t, h, "/generate?keys=firstName&type=user")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErrorEnvelope(t, w)
		assert.Equal(t, "invalid_request", body["error"])
	})

	t.Run("unknown type", func(t *testing.T) {
		w := do(t, h, "/generate?type=bogus")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErrorEnvelope(t, w)
		assert.Equal(t, "invalid_request", body["error"])
	})

	t.Run("malformed map", func(t *testing.T) {
		w := do(t, h, "/generate?map=%7Bnot-json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeErrorEnvelope(t, w)
		assert.Equal(t, "invalid_map_json", body["error"])
	})
}

func TestGenerate_UnknownKeysDropped(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/generate?keys=firstName,notAField")

	require.Equal(t, http.StatusOK, w.Code)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Contains(t, rec, "firstName")
	assert.NotContains(t, rec, "notAField")
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	h := newTestHandler(t)

	a := do(t, h, "/generate?type=user&count=5&seed=42")
	b := do(t, h, "/generate?type=user&count=5&seed=42")
	require.Equal(t, http.StatusOK, a.Code)
	assert.Equal(t, a.Body.String(), b.Body.String(),
		"same seed must reproduce the response byte for byte")

	c := do(t, h, "/generate?type=user&count=5&seed=43")
	assert.NotEqual(t, a.Body.String(), c.Body.String())
}

func TestGenerate_CountClamping(t *testing.T) {
	h := newTestHandler(t)

	t.Run("invalid count defaults to one record", func(t *testing.T) {
		w := do(t, h, "/generate?type=user&count=banana")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "{"))
	})

	t.Run("excess count clamps to max", func(t *testing.T) {
		w := do(t, h, "/generate?keys=firstName&count=99999")
		require.Equal(t, http.StatusOK, w.Code)
		var records []any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, config.Default().MaxCount)
	})
}

func TestGenerate_CSV(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/generate?type=user&count=3&format=csv")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="synthd.csv"`, w.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
}

func TestPresetRoutes(t *testing.T) {
	h := newTestHandler(t)
	for path := range presetRoutes {
		t.Run(path, func(t *testing.T) {
			w := do(t, h, path)
			require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
			var rec map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
			assert.NotEmpty(t, rec)
		})
	}
}

func TestPresetRoute_CSVFilenameIncludesName(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/user?format=csv")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="synthd-user.csv"`, w.Header().Get("Content-Disposition"))
}

func TestPresetRoute_HonorsShapingParams(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/user?seed=1&fields=firstName,address.city&flatten=true")

	require.Equal(t, http.StatusOK, w.Code)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Contains(t, rec, "firstName")
	assert.Contains(t, rec, "address.city")
	assert.Len(t, rec, 2)
}

func TestTypes(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/types")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Types  []string `json:"types"`
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Types, "user")
	assert.Contains(t, body.Fields, "firstName")
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "5s", body["uptime"])
	assert.Equal(t, "test", body["version"])
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	// Generate some traffic, then scrape.
	do(t, h, "/generate?keys=firstName")
	do(t, h, "/generate?type=bogus")

	w := do(t, h, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "synthd_requests_total")
	assert.Contains(t, body, `synthd_errors_total{kind="invalid_request"} 1`)
}

func TestDocsPage(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/generate")
}

func TestUnknownRoute(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
