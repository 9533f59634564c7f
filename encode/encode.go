package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/layerconf/format"
	"github.com/signadot/layerconf/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. A nil node is written as null.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encodeJSON(node, w, es); err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		node = ir.Null()
	}
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		q, err := Quote(node.String)
		if err != nil {
			return err
		}
		return writeString(w, es.color(ir.StringType, ValueColor, q))
	case ir.NumberType:
		s, err := NumberText(node)
		if err != nil {
			return err
		}
		return writeString(w, es.color(ir.NumberType, ValueColor, s))
	case ir.BoolType:
		return writeString(w, es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, es.color(ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("cannot encode node of type %s", node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, es.color(ir.ObjectType, SepColor, "{}"))
	}
	if err := writeString(w, es.color(ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	colon := ":"
	if !es.wire {
		colon = ": "
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.color(ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		q, err := Quote(field.String)
		if err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.ObjectType, FieldColor, q)); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.ObjectType, SepColor, colon)); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return fmt.Errorf("field %s: %w", q, err)
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, es.color(ir.ArrayType, SepColor, "[]"))
	}
	if err := writeString(w, es.color(ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, es.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.ArrayType, SepColor, "]"))
}

// Quote returns s as a JSON string literal without HTML escaping.
func Quote(s string) (string, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// NumberText returns the text of a number node. Literal text from a parser
// is kept as is. Integral floats get a ".0" suffix so they read back as
// floats.
func NumberText(node *ir.Node) (string, error) {
	switch {
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("cannot encode %v as a number", f)
		}
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, nil
	}
	return "", fmt.Errorf("number node has no value")
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := yamlValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, field := range node.Fields {
			v, err := yamlValue(node.Values[i])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field.String, err)
			}
			res[i] = yaml.MapItem{Key: field.String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := yamlValue(elt)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		}
		return node.Number, nil
	}
	return nil, fmt.Errorf("cannot encode node of type %s", node.Type)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
