package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/layerconf/format"
	"github.com/signadot/layerconf/ir"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "app.json")
	if err := os.WriteFile(p, []byte(`{"x": 1, // one
}`), 0o644); err != nil {
		t.Fatal(err)
	}
	text := NewReader().Read(Source(p))
	if text.Origin != File || text.Path != p || text.ReadErr != nil {
		t.Fatalf("unexpected text %+v", text)
	}
	node, err := text.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "x"); !ir.Equal(got, ir.FromInt(1)) {
		t.Errorf("x = %v", got)
	}
}

func TestReadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "app.yaml")
	if err := os.WriteFile(p, []byte("x: 1\ny: [a]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	text := NewReader().Read(Source(p))
	if text.Format != format.YAMLFormat {
		t.Fatalf("format %s", text.Format)
	}
	node, err := text.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := node.Keys(); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("keys %v", got)
	}
}

func TestReadLiteral(t *testing.T) {
	text := (&Reader{}).Read(`{"x": 2}`)
	if text.Origin != Literal {
		t.Fatalf("origin %s", text.Origin)
	}
	if text.ReadErr == nil {
		t.Errorf("expected the read error to be kept")
	}
	node, err := text.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "x"); !ir.Equal(got, ir.FromInt(2)) {
		t.Errorf("x = %v", got)
	}
}

func TestReadMissingPathIsLiteral(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.json")
	text := NewReader().Read(Source(p))
	if text.Origin != Literal {
		t.Fatalf("origin %s", text.Origin)
	}
	if !errors.Is(text.ReadErr, fs.ErrNotExist) {
		t.Errorf("read error %v", text.ReadErr)
	}
	if _, err := text.Parse(); err == nil {
		t.Errorf("expected the path to fail to parse as text")
	}
}

func TestReaderLiteralFormat(t *testing.T) {
	r := &Reader{
		ReadFile:      func(string) ([]byte, error) { return nil, fs.ErrNotExist },
		LiteralFormat: format.YAMLFormat,
	}
	node, err := r.Read("a: 1").Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(node, "a"); !ir.Equal(got, ir.FromInt(1)) {
		t.Errorf("a = %v", got)
	}
}

func TestDescribe(t *testing.T) {
	long := Source(`{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa": 1}`)
	text := (&Reader{ReadFile: func(string) ([]byte, error) { return nil, fs.ErrNotExist }}).Read(long)
	if got, want := text.Describe(), `literal "{\"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa..."`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestDefaultPathFor(t *testing.T) {
	tests := []struct {
		exe, want string
	}{
		{"/opt/app/bin/server", "/opt/app/bin/conf/server.json.default"},
		{"/opt/app/bin/server.exe", "/opt/app/bin/conf/server.json.default"},
		{"server", "conf/server.json.default"},
	}
	for _, tt := range tests {
		if got := DefaultPathFor(filepath.FromSlash(tt.exe)); got != filepath.FromSlash(tt.want) {
			t.Errorf("DefaultPathFor(%s) = %s, want %s", tt.exe, got, tt.want)
		}
	}
}

func TestRelativeTo(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "conf", "keys"), 0o755); err != nil {
		t.Fatal(err)
	}
	base := filepath.Join(dir, "conf", "app.json")
	got, err := RelativeTo("keys", base)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "conf", "keys"); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	got, err = RelativeTo("../conf/./keys", base)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "conf", "keys"); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if _, err := RelativeTo("nope", base); err == nil {
		t.Errorf("expected error for a missing path")
	}
}
