// Package encode writes IR nodes as JSON or YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// compact single line JSON
//	err = encode.Encode(node, os.Stdout, encode.EncodeWire(true))
//
//	// YAML
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// Object fields are written in node order.
//
// # Related Packages
//
//   - github.com/signadot/layerconf/ir - IR representation
//   - github.com/signadot/layerconf/parse - Parse text to IR
package encode
