// Package genspec turns a request's keys/map/type parameters into a
// generation plan and executes it against the atomic registry and the
// composite presets.
//
// The package is deliberately forgiving where the API contract is forgiving:
// unknown field names are dropped, not rejected. Only a missing or ambiguous
// selector, an unknown preset name, and malformed map JSON are errors.
package genspec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidRequest indicates a missing or ambiguous spec selector, or an
// unknown preset name. Surfaced to clients as error kind "invalid_request".
var ErrInvalidRequest = errors.New("exactly one of keys, map or type must be provided")

// ErrInvalidMapJSON indicates the map parameter is not valid JSON, or
// contains a node that is neither string, array nor object. Surfaced to
// clients as error kind "invalid_map_json".
var ErrInvalidMapJSON = errors.New("map parameter is not a valid JSON shape")

// Kind discriminates the three spec variants.
type Kind int

const (
	// ByKeys selects a flat list of atomic field names.
	ByKeys Kind = iota
	// ByMap selects an arbitrarily nested shape whose leaves are field names.
	ByMap
	// ByType selects a composite preset by name.
	ByType
)

// Spec is a parsed generation plan. Exactly one variant is populated,
// according to Kind.
type Spec struct {
	Kind Kind
	Keys []string
	Map  Node
	Type string
}

// Node is one node of a ByMap shape: a Field leaf, a List, or an Object.
type Node interface {
	node()
}

// Field is a leaf naming an atomic generator.
type Field string

// List is an ordered sequence of nodes.
type List []Node

// Object is an ordered sequence of key/node entries. Order mirrors the
// request JSON and is preserved through resolution.
type Object []Entry

// Entry is one key/node pair of an Object.
type Entry struct {
	Key  string
	Node Node
}

func (Field) node()  {}
func (List) node()   {}
func (Object) node() {}

// FromParams builds a Spec from the raw query parameters. Exactly one of
// keys, mapJSON and typ must be non-empty; anything else is ErrInvalidRequest.
func FromParams(keys, mapJSON, typ string) (Spec, error) {
	selectors := 0
	if keys != "" {
		selectors++
	}
	if mapJSON != "" {
		selectors++
	}
	if typ != "" {
		selectors++
	}
	if selectors != 1 {
		return Spec{}, ErrInvalidRequest
	}

	switch {
	case keys != "":
		return Spec{Kind: ByKeys, Keys: splitKeys(keys)}, nil
	case mapJSON != "":
		node, err := ParseMap(mapJSON)
		if err != nil {
			return Spec{}, err
		}
		return Spec{Kind: ByMap, Map: node}, nil
	default:
		return Spec{Kind: ByType, Type: typ}, nil
	}
}

// splitKeys splits a comma-separated key list, trimming whitespace and
// dropping empty segments.
func splitKeys(raw string) []string {
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

// ParseMap validates raw JSON into a Node tree, preserving object key order.
// Leaves that are not strings (numbers, booleans, null) are rejected: the
// shape language has no meaning for them.
func ParseMap(raw string) (Node, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	node, err := parseNode(dec)
	if err != nil {
		return nil, err
	}
	// Trailing content after the root value is malformed.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content", ErrInvalidMapJSON)
	}
	return node, nil
}

func parseNode(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapJSON, err)
	}

	switch t := tok.(type) {
	case string:
		return Field(t), nil
	case json.Delim:
		switch t {
		case '[':
			list := List{}
			for dec.More() {
				child, err := parseNode(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidMapJSON, err)
			}
			return list, nil
		case '{':
			obj := Object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidMapJSON, err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("%w: non-string key", ErrInvalidMapJSON)
				}
				child, err := parseNode(dec)
				if err != nil {
					return nil, err
				}
				obj = append(obj, Entry{Key: key, Node: child})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidMapJSON, err)
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("%w: leaf must be a field name string", ErrInvalidMapJSON)
}
