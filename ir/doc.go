// Package ir provides the tree value used for layered configuration.
//
// # Overview
//
// Every configuration layer, whether parsed from text or encoded from a Go
// value, is represented as an ir.Node tree. The tree is a recursive tagged
// union: the Type field selects which payload fields are meaningful.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, with optional literal text)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "key", Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there will always be the same number of fields as values. Fields are
// String typed and appear only once. Field order is kept for stable output
// but is not part of a node's value: Equal ignores it.
//
// # Numbers
//
// Integers which fit in an int64 are stored in Int64, other numbers in
// Float64. Nodes produced by a parser also keep the literal text in Number.
// An integer and a float are never Equal, even when numerically the same.
//
// # Values, not references
//
// Nodes carry no parent pointers or identity. Two nodes are the same value
// iff Equal reports so, and Clone produces a fully independent copy.
package ir
