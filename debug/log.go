package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/ir"
)

var out io.Writer = os.Stderr

// SetOutput redirects Logf and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Node renders a node as single line JSON when formatted with %s or %v.
type Node struct{ *ir.Node }

func (n Node) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n.Node, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", n.Node)
	}
	return buf.String()
}

// Logf formats like fmt.Printf to stderr. Maps and slices from
// encoding/json are rendered as indented JSON; wrap nodes in Node.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
