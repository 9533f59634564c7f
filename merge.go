package layerconf

import (
	"github.com/signadot/layerconf/debug"
	"github.com/signadot/layerconf/ir"
)

// Merge merges overlay onto base and returns the result.
//
// When both are objects, each overlay member is merged onto the base member
// of the same name in overlay order; a null member removes the key from
// base instead, and a key absent from base is added. In every other case,
// arrays included, overlay replaces base.
//
// base is modified in place and overlay is consumed: its nodes become part
// of the result, so callers must clone it first to keep using it. A nil
// overlay leaves base as is. A nil base is treated as null.
func Merge(base, overlay *ir.Node) *ir.Node {
	if base == nil {
		base = ir.Null()
	}
	if overlay == nil {
		return base
	}
	merge(base, overlay)
	return base
}

func merge(base, overlay *ir.Node) {
	if debug.Merge() {
		debug.Logf("merge %s onto %s\n", debug.Node{Node: overlay}, debug.Node{Node: base})
	}
	if base.Type != ir.ObjectType || overlay.Type != ir.ObjectType {
		*base = *overlay
		return
	}
	for i, field := range overlay.Fields {
		key := field.String
		val := overlay.Values[i]
		if val.Type == ir.NullType {
			base.Delete(key)
			continue
		}
		j := base.Index(key)
		if j == -1 {
			base.Set(key, ir.Null())
			j = len(base.Values) - 1
		}
		merge(base.Values[j], val)
	}
}
