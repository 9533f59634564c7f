package ir

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Node is a tree value. The payload fields used depend on Type.
//
// For ObjectType, Fields[i] is the (StringType) key of Values[i]. For
// ArrayType, Values holds the elements and Fields is empty. Numbers keep
// their literal text in Number when they come from a parser; Int64 or
// Float64 holds the decoded value.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{Type: y.Type}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromNumber creates a number node from its literal text. Integral text
// which fits in an int64 is decoded as Int64, anything else as Float64.
func FromNumber(text string) (*Node, error) {
	res := &Node{Type: NumberType, Number: text}
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			res.Int64 = &i
			return res, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", text, err)
	}
	res.Float64 = &f
	return res, nil
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object node preserving the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		kv := &kvs[i]
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.Fields[i] = FromString(kv.Key)
		res.Values[i] = val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Index returns the position of field in an object node, or -1.
func (y *Node) Index(field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

func Get(y *Node, field string) *Node {
	i := y.Index(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Set sets field to val in an object node, replacing an existing value in
// place or appending a new field.
func (y *Node) Set(field string, val *Node) {
	if i := y.Index(field); i != -1 {
		y.Values[i] = val
		return
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
}

// Delete removes field from an object node, keeping the order of the
// remaining fields. It reports whether the field was present.
func (y *Node) Delete(field string) bool {
	i := y.Index(field)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Keys returns the field names of an object node in order.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (node *Node) FromIR(o *Node) error {
	if o == nil {
		o = Null()
	}
	*node = *o.Clone()
	return nil
}

func (node *Node) ToIR() (*Node, error) {
	return node.Clone(), nil
}
