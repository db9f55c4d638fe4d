// Package metrics provides a small dependency-free metrics registry with
// Prometheus text exposition. synthd only needs labeled counters; richer
// instrument types can be added when a component asks for them.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// ErrDuplicateMetric is returned when a name is registered twice.
var ErrDuplicateMetric = errors.New("duplicate metric name")

// ErrLabelCountMismatch is returned when label values do not match the
// declared label names.
var ErrLabelCountMismatch = errors.New("label count mismatch")

// Counter is a monotonically increasing metric with fixed label names.
type Counter struct {
	name   string
	help   string
	labels []string

	mu     sync.Mutex
	values map[string]float64 // keyed by joined label values
	order  []string
}

// Inc increments the counter by one for the given label values.
func (c *Counter) Inc(labelValues ...string) {
	_ = c.Add(1, labelValues...)
}

// Add increases the counter for the given label values.
func (c *Counter) Add(delta float64, labelValues ...string) error {
	if len(labelValues) != len(c.labels) {
		return ErrLabelCountMismatch
	}
	key := strings.Join(labelValues, "\x00")

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.values[key]; !ok {
		c.order = append(c.order, key)
	}
	c.values[key] += delta
	return nil
}

// Value returns the current value for the given label values.
func (c *Counter) Value(labelValues ...string) float64 {
	key := strings.Join(labelValues, "\x00")
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key]
}

// Registry holds registered metrics and serves their exposition.
type Registry struct {
	mu       sync.RWMutex
	counters []*Counter
	byName   map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]bool)}
}

// NewCounter registers a labeled counter.
func (r *Registry) NewCounter(name, help string, labelNames ...string) (*Counter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byName[name] {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateMetric, name)
	}
	r.byName[name] = true
	c := &Counter{
		name:   name,
		help:   help,
		labels: labelNames,
		values: make(map[string]float64),
	}
	r.counters = append(r.counters, c)
	return c, nil
}

// MustCounter registers a labeled counter and panics on a duplicate name.
// Registration happens at startup, where a duplicate is a programming error.
func (r *Registry) MustCounter(name, help string, labelNames ...string) *Counter {
	c, err := r.NewCounter(name, help, labelNames...)
	if err != nil {
		panic(err)
	}
	return c
}

// Handler serves the registry in Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.RLock()
		counters := make([]*Counter, len(r.counters))
		copy(counters, r.counters)
		r.mu.RUnlock()

		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		for _, c := range counters {
			writeCounter(w, c)
		}
	})
}

func writeCounter(w http.ResponseWriter, c *Counter) {
	c.mu.Lock()
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	values := make(map[string]float64, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	c.mu.Unlock()

	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)

	_, _ = fmt.Fprintf(w, "# HELP %s %s\n", c.name, c.help)
	_, _ = fmt.Fprintf(w, "# TYPE %s counter\n", c.name)
	for _, key := range keys {
		if len(c.labels) == 0 {
			_, _ = fmt.Fprintf(w, "%s %g\n", c.name, values[key])
			continue
		}
		labelValues := strings.Split(key, "\x00")
		pairs := make([]string, len(c.labels))
		for i, name := range c.labels {
			pairs[i] = fmt.Sprintf("%s=%q", name, labelValues[i])
		}
		_, _ = fmt.Fprintf(w, "%s{%s} %g\n", c.name, strings.Join(pairs, ","), values[key])
	}
}
