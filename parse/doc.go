// Package parse parses configuration text into IR nodes.
//
// # Usage
//
//	// Parse JSON, comments and trailing commas allowed
//	node, err := parse.Parse([]byte(`{"name": "alice", /* age */ "age": 30,}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Object field order is preserved. Every error returned wraps ErrParse.
//
// # Related Packages
//
//   - github.com/signadot/layerconf/ir - IR representation
//   - github.com/signadot/layerconf/encode - Encode IR to text
package parse
