package shape

import (
	"encoding/json"
	"fmt"

	"github.com/getmockd/synthd/pkg/record"
)

// Flatten collapses nested objects into a single-level object with dotted
// keys. Sequence-valued leaves become compact JSON text: tabular output has
// no way to represent a variable-width sequence as columns. A non-object
// tree flattens to a single "value" entry.
func Flatten(v any) (*record.Object, error) {
	out := record.New()
	obj, ok := v.(*record.Object)
	if !ok {
		cell, err := cellValue(v)
		if err != nil {
			return nil, err
		}
		out.Set("value", cell)
		return out, nil
	}
	if err := flattenInto(out, "", obj); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out *record.Object, prefix string, obj *record.Object) error {
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if child, ok := v.(*record.Object); ok {
			if err := flattenInto(out, name, child); err != nil {
				return err
			}
			continue
		}
		cell, err := cellValue(v)
		if err != nil {
			return fmt.Errorf("flatten %s: %w", name, err)
		}
		out.Set(name, cell)
	}
	return nil
}

// cellValue converts a leaf to its flattened form. Primitives pass through;
// sequences (and anything else non-primitive) become compact JSON text.
func cellValue(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, int, int64, float64:
		return v, nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
}
