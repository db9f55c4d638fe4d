// HTML documentation page served at the API root.

package engine

import (
	"html/template"
	"net/http"

	"github.com/getmockd/synthd/pkg/faker"
	"github.com/getmockd/synthd/pkg/preset"
)

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>synthd — fake data API</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a2e; }
code, pre { background: #f4f4f8; border-radius: 4px; padding: 0.1rem 0.3rem; }
pre { padding: 0.75rem; overflow-x: auto; }
table { border-collapse: collapse; width: 100%; }
td, th { border: 1px solid #ddd; padding: 0.4rem 0.6rem; text-align: left; }
h2 { margin-top: 2rem; }
.fields code { margin-right: 0.4rem; line-height: 1.9; }
</style>
</head>
<body>
<h1>synthd {{.Version}}</h1>
<p>Synthetic record generation over HTTP. Responses are JSON by default, CSV on request.</p>

<h2>Endpoints</h2>
<table>
<tr><th>Route</th><th>Description</th></tr>
<tr><td><code>GET /generate</code></td><td>Flexible endpoint; requires exactly one of <code>keys</code>, <code>map</code>, <code>type</code></td></tr>
{{range .Presets}}<tr><td><code>GET /{{.Route}}</code></td><td>One or more <code>{{.Name}}</code> records</td></tr>
{{end}}<tr><td><code>GET /types</code></td><td>Available preset types and field names</td></tr>
<tr><td><code>GET /health</code></td><td>Liveness</td></tr>
<tr><td><code>GET /metrics</code></td><td>Request counters (Prometheus text)</td></tr>
</table>

<h2>Parameters</h2>
<table>
<tr><th>Name</th><th>Meaning</th></tr>
<tr><td><code>count</code></td><td>Records to generate; defaults to 1, clamped to the server maximum ({{.MaxCount}})</td></tr>
<tr><td><code>seed</code></td><td>Integer seed for reproducible output</td></tr>
<tr><td><code>format</code></td><td><code>json</code> (default) or <code>csv</code></td></tr>
<tr><td><code>flatten</code></td><td>Collapse nesting into dotted keys</td></tr>
<tr><td><code>fields</code></td><td>Comma-separated dotted paths to keep, e.g. <code>fields=address.city,email</code></td></tr>
<tr><td><code>keys</code></td><td>Comma-separated field names, e.g. <code>keys=firstName,email</code></td></tr>
<tr><td><code>map</code></td><td>JSON shape whose string leaves are field names</td></tr>
<tr><td><code>type</code></td><td>A preset name</td></tr>
</table>

<h2>Examples</h2>
<pre>GET /user?count=3&amp;seed=42
GET /generate?keys=firstName,lastName,email
GET /generate?map={"id":"uuid","loc":{"lat":"latitude","lng":"longitude"}}
GET /company?count=50&amp;format=csv</pre>

<h2>Fields</h2>
<p class="fields">{{range .Fields}}<code>{{.}}</code> {{end}}</p>
</body>
</html>
`))

// docsPreset pairs a preset name with its route.
type docsPreset struct {
	Route string
	Name  string
}

// handleDocs renders the HTML documentation page.
func (h *Handler) handleDocs(w http.ResponseWriter, _ *http.Request) {
	presets := make([]docsPreset, 0, len(preset.Names()))
	for _, name := range preset.Names() {
		route := name
		if name == "health" {
			route = "health-record"
		}
		presets = append(presets, docsPreset{Route: route, Name: name})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := docsTemplate.Execute(w, map[string]any{
		"Version":  h.version,
		"Presets":  presets,
		"Fields":   faker.Fields(),
		"MaxCount": h.cfg.MaxCount,
	})
	if err != nil {
		h.log.Error("docs render failed", "error", err)
	}
}
