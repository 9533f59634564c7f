package gomap

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/signadot/layerconf/ir"
	"github.com/signadot/layerconf/parse"
)

// Marshaler is implemented by types which produce their own tree.
type Marshaler interface {
	ToIR() (*ir.Node, error)
}

// Unmarshaler is implemented by types which decode themselves from a tree.
type Unmarshaler interface {
	FromIR(*ir.Node) error
}

// ToIR converts a Go value to an IR node. A Marshaler is asked directly;
// any other value goes through encoding/json.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	node, err := toIR(v)
	if err != nil {
		return nil, err
	}
	if cfg.omitNulls {
		omitNulls(node)
	}
	return node, nil
}

func toIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if m, ok := v.(Marshaler); ok {
		node, err := m.ToIR()
		if err != nil {
			return nil, &MarshalError{Message: fmt.Sprintf("%T.ToIR", v), Err: err}
		}
		if node == nil {
			node = ir.Null()
		}
		return node, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, &MarshalError{Message: fmt.Sprintf("encoding %T: %v", v, err), Err: err}
	}
	node, err := parse.Parse(d, parse.ParseComments(false))
	if err != nil {
		return nil, &MarshalError{Message: fmt.Sprintf("reading encoded %T: %v", v, err), Err: err}
	}
	return node, nil
}

func omitNulls(node *ir.Node) {
	switch node.Type {
	case ir.ObjectType:
		for i := len(node.Values) - 1; i >= 0; i-- {
			if node.Values[i].Type == ir.NullType {
				node.Delete(node.Fields[i].String)
				continue
			}
			omitNulls(node.Values[i])
		}
	case ir.ArrayType:
		for _, v := range node.Values {
			omitNulls(v)
		}
	}
}

// FromIR decodes node into v, which must be a non-nil pointer.
func FromIR(node *ir.Node, v any, opts ...UnmapOption) error {
	if u, ok := v.(Unmarshaler); ok {
		if err := u.FromIR(node); err != nil {
			return &UnmarshalError{Message: fmt.Sprintf("%T.FromIR: %v", v, err), Err: err}
		}
		return nil
	}
	cfg := &unmapConfig{}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	hook := mapstructure.ComposeDecodeHookFunc(
		jsonUnmarshalerHook,
		numberHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	md := &mapstructure.Metadata{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Squash:      true,
		ErrorUnused: cfg.strict,
		Metadata:    md,
		DecodeHook:  hook,
		Result:      v,
	})
	if err != nil {
		return &UnmarshalError{Message: fmt.Sprintf("target %T: %v", v, err), Err: err}
	}
	if err := dec.Decode(ir.ToAny(node)); err != nil {
		return &UnmarshalError{Message: err.Error(), Err: err}
	}
	if cfg.unused != nil {
		*cfg.unused = md.Unused
	}
	return nil
}
