// Package layerconf resolves a typed configuration value from layered
// sources.
//
// Three layers are merged in order of increasing precedence:
//
//   - a default source, which must always parse
//   - an optional user source
//   - an optional command line value of the target type
//
// Sources are file paths or literal text (see package source). Each layer
// is parsed into an [ir.Node] tree and merged onto the layers below it
// with [Merge]: objects merge key by key, a null member deletes the key it
// names, and anything else, arrays included, replaces what was there.
// Omitting a key inherits it from the lower layer.
//
// Example usage:
//
//	type Config struct {
//	    Addr  string `json:"addr"`
//	    Debug bool   `json:"debug"`
//	}
//
//	cfg, err := layerconf.Resolve[Config](
//	    "conf/server.json.default", // file, or literal text
//	    source.Source(*userFlag),   // "" means no user layer
//	    &Config{Debug: *debugFlag},
//	    layerconf.WithLogger(logger),
//	)
//
// [Diff] computes the overlay which takes one tree to another under
// [Merge]. It never produces deletions for keys missing from its second
// argument; those must be spelled as explicit nulls.
package layerconf
