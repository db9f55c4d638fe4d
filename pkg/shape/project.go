package shape

import (
	"strings"

	"github.com/getmockd/synthd/pkg/record"
)

// Project prunes one value tree down to the given dotted paths, rebuilding
// intermediate nesting. Paths that match nothing are omitted — never padded
// with nulls — so projecting with no matching path yields an empty object.
// Non-object trees have no addressable fields and also project to an empty
// object.
func Project(v any, paths []string) *record.Object {
	out := record.New()
	obj, ok := v.(*record.Object)
	if !ok {
		return out
	}
	for _, path := range paths {
		segs := strings.Split(path, ".")
		if val, found := lookup(obj, segs); found {
			insert(out, segs, val)
		}
	}
	return out
}

// lookup walks the object along the path segments. Traversal stops at
// anything that is not an object; a path into a primitive or a sequence is
// simply absent.
func lookup(o *record.Object, segs []string) (any, bool) {
	cur := any(o)
	for _, seg := range segs {
		obj, ok := cur.(*record.Object)
		if !ok {
			return nil, false
		}
		cur, ok = obj.Get(seg)
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// insert writes val at the path, creating intermediate objects as needed and
// reusing ones created by earlier paths so sibling leaves share a parent.
func insert(o *record.Object, segs []string, val any) {
	for _, seg := range segs[:len(segs)-1] {
		child, ok := o.Get(seg)
		childObj, isObj := child.(*record.Object)
		if !ok || !isObj {
			childObj = record.New()
			o.Set(seg, childObj)
		}
		o = childObj
	}
	o.Set(segs[len(segs)-1], val)
}

// ParseFields splits the fields parameter into an ordered path list,
// dropping empty segments.
func ParseFields(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
