package parse

import (
	"fmt"
	"time"

	"github.com/signadot/layerconf/ir"

	"github.com/goccy/go-yaml"
)

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.FromKeyVals(nil)
		for _, item := range x {
			key := fmt.Sprint(item.Key)
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	default:
		return ir.FromAny(v)
	}
}
