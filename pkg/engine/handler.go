package engine

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/getmockd/synthd/pkg/config"
	"github.com/getmockd/synthd/pkg/faker"
	"github.com/getmockd/synthd/pkg/genspec"
	"github.com/getmockd/synthd/pkg/httputil"
	"github.com/getmockd/synthd/pkg/metrics"
	"github.com/getmockd/synthd/pkg/preset"
	"github.com/getmockd/synthd/pkg/shape"
)

// Error kinds surfaced in the {error, message} envelope.
const (
	errKindInvalidRequest = "invalid_request"
	errKindInvalidMapJSON = "invalid_map_json"
	errKindCSVFailed      = "csv_generation_failed"
	errKindInternal       = "internal_error"
)

// presetRoutes maps URL paths to preset names. The health preset lives at
// /health-record because /health is the liveness endpoint.
var presetRoutes = map[string]string{
	"/user":          "user",
	"/company":       "company",
	"/product":       "product",
	"/address":       "address",
	"/personal":      "personal",
	"/business":      "business",
	"/location":      "location",
	"/financial":     "financial",
	"/tech":          "tech",
	"/health-record": "health",
}

// Handler routes synthd's HTTP API.
type Handler struct {
	cfg     *config.Config
	log     *slog.Logger
	mux     *http.ServeMux
	uptime  func() time.Duration
	version string

	requestsTotal *metrics.Counter
	errorsTotal   *metrics.Counter
}

// NewHandler builds the route handler. The uptime callback feeds /health.
func NewHandler(cfg *config.Config, log *slog.Logger, registry *metrics.Registry, uptime func() time.Duration, version string) *Handler {
	h := &Handler{
		cfg:     cfg,
		log:     log,
		mux:     http.NewServeMux(),
		uptime:  uptime,
		version: version,
	}
	h.requestsTotal = registry.MustCounter(
		"synthd_requests_total", "Generation requests served.", "route", "format")
	h.errorsTotal = registry.MustCounter(
		"synthd_errors_total", "Requests rejected or failed.", "kind")

	h.mux.HandleFunc("GET /generate", h.handleGenerate)
	for path, name := range presetRoutes {
		h.mux.HandleFunc("GET "+path, h.presetHandler(name))
	}
	h.mux.HandleFunc("GET /types", h.handleTypes)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.Handle("GET /metrics", registry.Handler())
	h.mux.HandleFunc("GET /{$}", h.handleDocs)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// handleGenerate serves the flexible endpoint: exactly one of keys, map and
// type selects what to build.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec, err := genspec.FromParams(q.Get("keys"), q.Get("map"), q.Get("type"))
	if err != nil {
		h.writeSpecError(w, err)
		return
	}
	h.generate(w, r, spec, "/generate", "")
}

// presetHandler serves a dedicated preset route; equivalent to /generate
// with a fixed type and no selector parameters.
func (h *Handler) presetHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.generate(w, r, genspec.Spec{Kind: genspec.ByType, Type: name}, "/"+name, name)
	}
}

// generate runs the shaping pipeline and writes the response. Seeding
// happens here, before any generation, by constructing the request RNG.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request, spec genspec.Spec, route, name string) {
	q := r.URL.Query()
	rng := faker.NewRNG(q.Get("seed"))
	opts := shape.Options{
		Count:   q.Get("count"),
		Fields:  q.Get("fields"),
		Flatten: q.Get("flatten"),
		Format:  q.Get("format"),
		Name:    name,
	}

	result, err := shape.Run(spec, rng, opts, h.cfg.MaxCount)
	if err != nil {
		h.writeSpecError(w, err)
		return
	}

	h.requestsTotal.Inc(route, shape.ParseFormat(opts.Format))
	if result.ContentType == shape.ContentTypeCSV {
		httputil.WriteCSV(w, result.Filename, result.Body)
		return
	}
	httputil.WriteRawJSON(w, result.Body)
}

// writeSpecError maps core errors onto the error envelope.
func (h *Handler) writeSpecError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, genspec.ErrInvalidMapJSON):
		h.errorsTotal.Inc(errKindInvalidMapJSON)
		httputil.WriteBadRequest(w, errKindInvalidMapJSON, err.Error())
	case errors.Is(err, genspec.ErrInvalidRequest):
		h.errorsTotal.Inc(errKindInvalidRequest)
		httputil.WriteBadRequest(w, errKindInvalidRequest, err.Error())
	case errors.Is(err, shape.ErrCSV):
		h.errorsTotal.Inc(errKindCSVFailed)
		httputil.WriteInternalError(w, errKindCSVFailed, "could not encode CSV output")
	default:
		h.errorsTotal.Inc(errKindInternal)
		h.log.Error("generation failed", "error", err)
		httputil.WriteInternalError(w, errKindInternal, "internal error")
	}
}

// handleTypes is the discovery endpoint: preset names plus the sorted
// atomic field list.
func (h *Handler) handleTypes(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, map[string]any{
		"types":  preset.Names(),
		"fields": faker.Fields(),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, map[string]any{
		"status":  "ok",
		"uptime":  h.uptime().Round(time.Second).String(),
		"version": h.version,
	})
}
