package shape

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/getmockd/synthd/pkg/record"
)

// ErrCSV wraps any failure while producing tabular output. Surfaced to
// clients as error kind "csv_generation_failed".
var ErrCSV = errors.New("csv generation failed")

// EncodeCSV renders flattened records as CSV: a header row with the union of
// all columns in first-seen order, then one row per record. Cells absent
// from a record are left empty.
func EncodeCSV(records []*record.Object) ([]byte, error) {
	columns := []string{}
	seen := map[string]bool{}
	for _, rec := range records {
		for _, key := range rec.Keys() {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCSV, err)
	}
	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			v, ok := rec.Get(col)
			if !ok {
				row[i] = ""
				continue
			}
			cell, err := formatCell(v)
			if err != nil {
				return nil, fmt.Errorf("%w: column %s: %v", ErrCSV, col, err)
			}
			row[i] = cell
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCSV, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCSV, err)
	}
	return buf.Bytes(), nil
}

// formatCell stringifies one flattened cell for tabular output.
func formatCell(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported cell type %T", v)
	}
}
