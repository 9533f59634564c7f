package layerconf

import (
	"github.com/signadot/layerconf/debug"
	"github.com/signadot/layerconf/ir"
)

// Diff returns an overlay which turns a into b under Merge, or nil when a
// and b are equal.
//
// For two objects the result holds the members of b which are new or
// changed, changed objects being diffed recursively. Keys of a missing
// from b are not represented: b must hold an explicit null to delete
// them. Otherwise the result is a clone of b.
//
// Neither argument is modified. A nil argument is treated as null.
func Diff(a, b *ir.Node) *ir.Node {
	if a == nil {
		a = ir.Null()
	}
	if b == nil {
		b = ir.Null()
	}
	res := diff(a, b)
	if debug.Diff() {
		debug.Logf("diff %s -> %s: %s\n", debug.Node{Node: a}, debug.Node{Node: b}, debug.Node{Node: res})
	}
	return res
}

func diff(a, b *ir.Node) *ir.Node {
	if a.Type != ir.ObjectType || b.Type != ir.ObjectType {
		if ir.Equal(a, b) {
			return nil
		}
		return b.Clone()
	}
	var kvs []ir.KeyVal
	for i, field := range b.Fields {
		key := field.String
		vb := b.Values[i]
		va := ir.Get(a, key)
		if va == nil {
			kvs = append(kvs, ir.KeyVal{Key: key, Val: vb.Clone()})
			continue
		}
		if ir.Equal(va, vb) {
			continue
		}
		if d := diff(va, vb); d != nil {
			kvs = append(kvs, ir.KeyVal{Key: key, Val: d})
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}
