// Package record defines the value tree produced by generation.
//
// A value tree is one of: a primitive (string, int, float64, bool), an
// ordered sequence ([]any), or an Object — a string-keyed mapping that
// preserves insertion order. Plain Go maps are deliberately not used for
// objects: field order is observable in JSON output and drives CSV column
// order, so it must be stable.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object is an insertion-ordered string-keyed mapping.
// The zero value is an empty object ready for use.
type Object struct {
	keys   []string
	values map[string]any
}

// New returns an empty Object.
func New() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores value under key. Setting an existing key replaces the value
// in place without changing its position.
func (o *Object) Set(key string, value any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil || o.values == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// MarshalJSON encodes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Equal reports whether two objects hold the same keys in the same order
// with equal values. Nested objects and sequences are compared by their
// JSON encodings.
func Equal(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, k := range a.Keys() {
		if b.Keys()[i] != k {
			return false
		}
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		ab, aerr := json.Marshal(av)
		bb, berr := json.Marshal(bv)
		if aerr != nil || berr != nil || !bytes.Equal(ab, bb) {
			return false
		}
	}
	return true
}
