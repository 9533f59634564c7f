// Package source turns configuration source strings into text.
//
// A Source names either a file or holds the configuration text itself. It
// is first tried as a path; when the file cannot be read the string is
// used as literal text. The fallback is never an error: only parsing the
// resulting text can fail.
package source

import (
	"fmt"
	"os"

	"github.com/signadot/layerconf/debug"
	"github.com/signadot/layerconf/format"
	"github.com/signadot/layerconf/ir"
	"github.com/signadot/layerconf/parse"
)

// Source is a file path or literal configuration text.
type Source string

type Origin int

const (
	File Origin = iota
	Literal
)

func (o Origin) String() string {
	switch o {
	case File:
		return "file"
	case Literal:
		return "literal"
	}
	return fmt.Sprintf("<origin %d>", int(o))
}

// Text is the outcome of reading a Source.
type Text struct {
	Source Source
	Origin Origin
	// Path is the file read when Origin is File.
	Path   string
	Data   []byte
	Format format.Format
	// ReadErr is the file read error which led to literal interpretation.
	ReadErr error
}

// Reader reads sources. The zero value reads from the local filesystem and
// treats literal text as JSON.
type Reader struct {
	ReadFile      func(string) ([]byte, error)
	LiteralFormat format.Format
}

func NewReader() *Reader {
	return &Reader{ReadFile: os.ReadFile}
}

func (r *Reader) Read(src Source) *Text {
	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	p := string(src)
	d, err := readFile(p)
	if err == nil {
		if debug.Source() {
			debug.Logf("source %q: read %d bytes from file\n", p, len(d))
		}
		return &Text{
			Source: src,
			Origin: File,
			Path:   p,
			Data:   d,
			Format: format.FromPath(p),
		}
	}
	if debug.Source() {
		debug.Logf("source %q: %v, using it as %s text\n", p, err, r.LiteralFormat)
	}
	return &Text{
		Source:  src,
		Origin:  Literal,
		Data:    []byte(p),
		Format:  r.LiteralFormat,
		ReadErr: err,
	}
}

// Parse parses the text in its detected format. opts are applied after the
// format option and may override it.
func (t *Text) Parse(opts ...parse.ParseOption) (*ir.Node, error) {
	all := make([]parse.ParseOption, 0, len(opts)+1)
	all = append(all, parse.ParseFormat(t.Format))
	all = append(all, opts...)
	return parse.Parse(t.Data, all...)
}

// Describe names the text for messages: the path for files, a short
// excerpt for literals.
func (t *Text) Describe() string {
	if t.Origin == File {
		return t.Path
	}
	const excerpt = 40
	s := string(t.Data)
	if len(s) > excerpt {
		s = s[:excerpt] + "..."
	}
	return fmt.Sprintf("%s %q", t.Origin, s)
}
