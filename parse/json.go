package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/layerconf/ir"

	"github.com/tailscale/hujson"
)

func parseJSON(d []byte, opts *parseOpts) (*ir.Node, error) {
	if opts.comments {
		// Standardize rewrites its argument in place.
		std, err := hujson.Standardize(bytes.Clone(d))
		if err != nil {
			return nil, err
		}
		d = std
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	_, err = dec.Token()
	switch {
	case err == nil:
		return nil, fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
	case !errors.Is(err, io.EOF):
		return nil, err
	}
	return res, nil
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q at offset %d", x, dec.InputOffset())
	case json.Number:
		return ir.FromNumber(string(x))
	default:
		return ir.FromAny(x)
	}
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	res := ir.FromKeyVals(nil)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key at offset %d", dec.InputOffset())
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		// duplicate keys: last value wins, first position is kept
		res.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return res, nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	vals := []*ir.Node{}
	for dec.More() {
		val, err := jsonValue(dec)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", len(vals), err)
		}
		vals = append(vals, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ir.FromSlice(vals), nil
}
