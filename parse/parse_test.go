package parse

import (
	"errors"
	"testing"

	"github.com/signadot/layerconf/ir"
)

type parseTest struct {
	name string
	in   string
	opts []ParseOption
	want *ir.Node
	err  bool
}

func obj(kvs ...ir.KeyVal) *ir.Node { return ir.FromKeyVals(kvs) }
func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

func TestParse(t *testing.T) {
	tests := []parseTest{
		{
			name: "scalars",
			in:   `{"s": "x", "i": 3, "f": 1.5, "b": true, "n": null}`,
			want: obj(
				kv("s", ir.FromString("x")),
				kv("i", ir.FromInt(3)),
				kv("f", ir.FromFloat(1.5)),
				kv("b", ir.FromBool(true)),
				kv("n", ir.Null())),
		},
		{
			name: "comments and trailing commas",
			in: `
// leading comment
{
  "a": 1, // one
  /* block */ "b": [1, 2,],
}`,
			want: obj(
				kv("a", ir.FromInt(1)),
				kv("b", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}))),
		},
		{
			name: "comments rejected when disabled",
			in:   `{"a": 1 // one
}`,
			opts: []ParseOption{ParseComments(false)},
			err:  true,
		},
		{
			name: "top level array",
			in:   `[1, "two", {"three": 3}]`,
			want: ir.FromSlice([]*ir.Node{
				ir.FromInt(1),
				ir.FromString("two"),
				obj(kv("three", ir.FromInt(3)))}),
		},
		{
			name: "top level scalar",
			in:   `"just a string"`,
			want: ir.FromString("just a string"),
		},
		{
			name: "duplicate key last wins",
			in:   `{"a": 1, "a": 2}`,
			want: obj(kv("a", ir.FromInt(2))),
		},
		{
			name: "empty",
			in:   "",
			err:  true,
		},
		{
			name: "not json",
			in:   "/etc/app/conf/missing.json",
			err:  true,
		},
		{
			name: "trailing data",
			in:   `{"a": 1} {"b": 2}`,
			err:  true,
		},
		{
			name: "unterminated",
			in:   `{"a": [1, 2`,
			err:  true,
		},
		{
			name: "yaml",
			in: `
name: svc
port: 8080
offset: -2
ratio: 0.25
tags: [a, b]
tls:
  enabled: false
`,
			opts: []ParseOption{ParseYAML()},
			want: obj(
				kv("name", ir.FromString("svc")),
				kv("port", ir.FromInt(8080)),
				kv("offset", ir.FromInt(-2)),
				kv("ratio", ir.FromFloat(0.25)),
				kv("tags", ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")})),
				kv("tls", obj(kv("enabled", ir.FromBool(false))))),
		},
		{
			name: "bad yaml",
			in:   "a: [1, 2",
			opts: []ParseOption{ParseYAML()},
			err:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in), tt.opts...)
			if tt.err {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				if !errors.Is(err, ErrParse) {
					t.Errorf("error %v does not wrap ErrParse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", ir.ToAny(got), ir.ToAny(tt.want))
			}
		})
	}
}

func TestParseKeepsFieldOrder(t *testing.T) {
	for _, opt := range []ParseOption{ParseJSON(), ParseYAML()} {
		in := `{"zeta": 1, "alpha": 2, "mid": 3}`
		node, err := Parse([]byte(in), opt)
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"zeta", "alpha", "mid"}
		got := node.Keys()
		if len(got) != len(want) {
			t.Fatalf("got %v want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("field %d: got %q want %q", i, got[i], want[i])
			}
		}
	}
}

func TestParseDoesNotModifyInput(t *testing.T) {
	in := []byte(`{"a": 1, // c
}`)
	orig := string(in)
	if _, err := Parse(in); err != nil {
		t.Fatal(err)
	}
	if string(in) != orig {
		t.Errorf("input modified: %q", in)
	}
}
