package ir

import (
	"fmt"
	"strings"
)

// SplitPath splits a dotted field path such as "server.tls.port" into its
// fields. The empty path and "$" denote the root and yield no fields. A
// leading "$." is accepted.
func SplitPath(p string) []string {
	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return nil
	}
	return strings.Split(p, ".")
}

// GetPath returns the node at the dotted path p, or nil if some field on
// the way is missing or is not an object.
func (y *Node) GetPath(p string) *Node {
	res := y
	for _, f := range SplitPath(p) {
		res = Get(res, f)
		if res == nil {
			return nil
		}
	}
	return res
}

// SetPath sets the node at the dotted path p to val, creating intermediate
// objects as needed. Intermediate values which are not objects are
// replaced by objects.
func (y *Node) SetPath(p string, val *Node) error {
	fields := SplitPath(p)
	if len(fields) == 0 {
		return fmt.Errorf("cannot set root with path %q", p)
	}
	if y.Type != ObjectType {
		return fmt.Errorf("cannot set %q on %s", p, y.Type)
	}
	cur := y
	n := len(fields)
	for i, f := range fields {
		if f == "" {
			return fmt.Errorf("empty field in path %q", p)
		}
		if i == n-1 {
			cur.Set(f, val)
			break
		}
		next := Get(cur, f)
		if next == nil || next.Type != ObjectType {
			next = FromKeyVals(nil)
			cur.Set(f, next)
		}
		cur = next
	}
	return nil
}
