package parse

import (
	"github.com/signadot/layerconf/format"
)

type parseOpts struct {
	format   format.Format
	comments bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseComments controls whether JSON input may contain comments and
// trailing commas. It is on by default and has no effect on YAML.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}
