package genspec

import (
	"fmt"
	mathrand "math/rand/v2"

	"github.com/getmockd/synthd/pkg/faker"
	"github.com/getmockd/synthd/pkg/preset"
	"github.com/getmockd/synthd/pkg/record"
)

// Resolve executes the plan once and returns a single value tree.
// Unknown field names are dropped from objects and resolve to null in list
// positions; an unknown preset name is the one resolution-time client error.
func Resolve(s Spec, rng *mathrand.Rand) (any, error) {
	switch s.Kind {
	case ByKeys:
		o := record.New()
		for _, key := range s.Keys {
			if v, ok := faker.Generate(key, rng); ok {
				o.Set(key, v)
			}
		}
		return o, nil

	case ByMap:
		v, _ := resolveNode(s.Map, rng)
		return v, nil

	case ByType:
		o, ok := preset.Generate(s.Type, rng)
		if !ok {
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, s.Type)
		}
		return o, nil
	}
	return nil, fmt.Errorf("%w: unhandled spec kind %d", ErrInvalidRequest, s.Kind)
}

// resolveNode walks a ByMap shape. The second return reports whether the
// node produced a value: an unknown field leaf does not, which lets object
// resolution omit the key entirely. List positions keep a null placeholder
// instead, since elements cannot be dropped without shifting indices.
func resolveNode(n Node, rng *mathrand.Rand) (any, bool) {
	switch node := n.(type) {
	case Field:
		return faker.Generate(string(node), rng)

	case List:
		out := make([]any, len(node))
		for i, child := range node {
			v, ok := resolveNode(child, rng)
			if ok {
				out[i] = v
			}
		}
		return out, true

	case Object:
		o := record.New()
		for _, entry := range node {
			if v, ok := resolveNode(entry.Node, rng); ok {
				o.Set(entry.Key, v)
			}
		}
		return o, true
	}
	return nil, false
}
