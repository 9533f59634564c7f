package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/ir"
)

var jsonUnmarshalerType = reflect.TypeFor[json.Unmarshaler]()

// numberHook rejects numbers which do not fit the target kind instead of
// letting them be truncated or wrap around. Floats never decode into
// integers, as with encoding/json.
func numberHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch x := data.(type) {
		case int64:
			if reflect.Zero(t).OverflowInt(x) {
				return nil, fmt.Errorf("number %d overflows %s", x, t)
			}
		case float64:
			return nil, fmt.Errorf("cannot decode number %v into %s", x, t)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch x := data.(type) {
		case int64:
			if x < 0 || reflect.Zero(t).OverflowUint(uint64(x)) {
				return nil, fmt.Errorf("number %d overflows %s", x, t)
			}
		case float64:
			return nil, fmt.Errorf("cannot decode number %v into %s", x, t)
		}
	case reflect.Float32:
		if x, ok := data.(float64); ok && reflect.Zero(t).OverflowFloat(x) {
			return nil, fmt.Errorf("number %v overflows %s", x, t)
		}
	}
	return data, nil
}

// jsonUnmarshalerHook decodes values whose type implements json.Unmarshaler
// from the JSON text of the subtree, so that types with custom JSON
// encodings read back what ToIR produced.
func jsonUnmarshalerHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return data, nil
	}
	if f == t || !reflect.PointerTo(t).Implements(jsonUnmarshalerType) {
		return data, nil
	}
	node, err := ir.FromAny(data)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	res := reflect.New(t)
	if err := res.Interface().(json.Unmarshaler).UnmarshalJSON(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%s: %w", t, err)
	}
	return res.Elem().Interface(), nil
}
