package layerconf

import (
	"testing"

	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/ir"
	"github.com/signadot/layerconf/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return node
}

func str(node *ir.Node) string {
	if node == nil {
		return "<nil>"
	}
	return encode.MustString(node, encode.EncodeWire(true))
}

func assertEqual(t *testing.T, got, want *ir.Node) {
	t.Helper()
	if !ir.Equal(got, want) {
		t.Errorf("got %s, want %s", str(got), str(want))
	}
}
