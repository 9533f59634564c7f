// Package gomap converts between Go values and IR nodes.
//
// Types take part in one of two ways:
//
//   - by implementing Marshaler and Unmarshaler, which are used as is
//   - otherwise through their JSON form: ToIR marshals with encoding/json
//     and parses the result, FromIR decodes the tree with mapstructure
//     using the json struct tags.
//
// Example usage:
//
//	type Config struct {
//	    Addr    string        `json:"addr"`
//	    Timeout time.Duration `json:"timeout"`
//	}
//
//	node, err := gomap.ToIR(&Config{Addr: ":8080"})
//
//	var cfg Config
//	err = gomap.FromIR(node, &cfg)
//
// FromIR follows encoding/json where the two could differ: types
// implementing json.Unmarshaler decode from the JSON text of their subtree,
// floats never decode into integer fields and integers must fit their
// field. Durations are also accepted as strings ("5s"), strings decode into
// types implementing encoding.TextUnmarshaler, and embedded structs are
// flattened as encoding/json does.
package gomap
