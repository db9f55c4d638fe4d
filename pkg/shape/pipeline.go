// Package shape post-processes generated value trees: count handling, field
// projection by dotted path, recursive flattening, and encoding to JSON or
// CSV. The step order is fixed — generation, projection, flattening,
// encoding — and must not be rearranged.
package shape

import (
	"encoding/json"
	"fmt"
	mathrand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/getmockd/synthd/pkg/genspec"
	"github.com/getmockd/synthd/pkg/record"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Content types.
const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

// Options carries the raw shaping parameters of one request. All fields are
// the unparsed query values: interpretation is lenient by contract, and the
// leniency lives here rather than at every call site.
type Options struct {
	Count   string // record count; invalid or sub-1 defaults to 1, clamped to the max
	Fields  string // comma-separated dotted projection paths
	Flatten string // boolean-ish flag; "true", "1", "yes", "on" enable
	Format  string // "json" (default) or "csv"
	Name    string // optional preset name, used for the CSV filename hint
}

// Result is the shaped response handed back to the HTTP layer.
type Result struct {
	ContentType string
	Body        []byte
	Filename    string // set for CSV, as a Content-Disposition hint
}

// Run executes the pipeline for one request: resolve the spec count times,
// project, flatten, encode. A count of 1 produces a bare record, larger
// counts an array — existing single-item clients depend on the asymmetry.
func Run(spec genspec.Spec, rng *mathrand.Rand, opts Options, maxCount int) (Result, error) {
	count := ParseCount(opts.Count, maxCount)

	var tree any
	if count == 1 {
		single, err := genspec.Resolve(spec, rng)
		if err != nil {
			return Result{}, err
		}
		tree = single
	} else {
		many := make([]any, count)
		for i := range many {
			single, err := genspec.Resolve(spec, rng)
			if err != nil {
				return Result{}, err
			}
			many[i] = single
		}
		tree = many
	}

	if paths := ParseFields(opts.Fields); len(paths) > 0 {
		tree = applyPerRecord(tree, func(rec any) any {
			return Project(rec, paths)
		})
	}

	if ParseFormat(opts.Format) == FormatCSV {
		return encodeCSVResult(tree, opts.Name)
	}

	if parseBool(opts.Flatten) {
		var err error
		tree, err = flattenTree(tree)
		if err != nil {
			return Result{}, err
		}
	}

	body, err := json.Marshal(tree)
	if err != nil {
		return Result{}, fmt.Errorf("encode json: %w", err)
	}
	return Result{ContentType: ContentTypeJSON, Body: body}, nil
}

// ParseCount parses the count parameter. Invalid or sub-1 values default
// to 1; values above maxCount are clamped down, never rejected.
func ParseCount(raw string, maxCount int) int {
	if maxCount < 1 {
		maxCount = 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 1
	}
	if n > maxCount {
		return maxCount
	}
	return n
}

// ParseFormat normalizes the format parameter; anything but "csv" is JSON.
func ParseFormat(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), FormatCSV) {
		return FormatCSV
	}
	return FormatJSON
}

// parseBool interprets a boolean-ish query value.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// applyPerRecord maps fn over each record of a result set, or over the bare
// record when count was 1.
func applyPerRecord(tree any, fn func(any) any) any {
	if many, ok := tree.([]any); ok {
		out := make([]any, len(many))
		for i, rec := range many {
			out[i] = fn(rec)
		}
		return out
	}
	return fn(tree)
}

// flattenTree flattens a bare record or each record of a sequence.
func flattenTree(tree any) (any, error) {
	if many, ok := tree.([]any); ok {
		out := make([]any, len(many))
		for i, rec := range many {
			flat, err := Flatten(rec)
			if err != nil {
				return nil, err
			}
			out[i] = flat
		}
		return out, nil
	}
	return Flatten(tree)
}

// encodeCSVResult flattens every record regardless of the flatten flag —
// tabular encoding has no other way to represent nesting — and renders CSV.
func encodeCSVResult(tree any, name string) (Result, error) {
	var records []any
	if many, ok := tree.([]any); ok {
		records = many
	} else {
		records = []any{tree}
	}

	flat := make([]*record.Object, len(records))
	for i, rec := range records {
		f, err := Flatten(rec)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrCSV, err)
		}
		flat[i] = f
	}

	body, err := EncodeCSV(flat)
	if err != nil {
		return Result{}, err
	}

	filename := "synthd.csv"
	if name != "" {
		filename = "synthd-" + name + ".csv"
	}
	return Result{ContentType: ContentTypeCSV, Body: body, Filename: filename}, nil
}
