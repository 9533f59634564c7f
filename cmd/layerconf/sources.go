package main

import (
	"fmt"
	"io"

	"github.com/signadot/layerconf/format"
	"github.com/signadot/layerconf/ir"
	"github.com/signadot/layerconf/parse"
	"github.com/signadot/layerconf/source"

	"github.com/scott-cotton/cli"
)

func (cfg *MainConfig) reader() *source.Reader {
	rd := source.NewReader()
	if f := cfg.inFormat(); f != nil {
		rd.LiteralFormat = *f
	}
	return rd
}

// getSource reads and parses arg, stdin for "-", following the file or
// literal rule otherwise.
func getSource(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	if arg == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		f := format.JSONFormat
		if p := cfg.inFormat(); p != nil {
			f = *p
		}
		return parse.Parse(d, parse.ParseFormat(f))
	}
	text := cfg.reader().Read(source.Source(arg))
	node, err := text.Parse()
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", text.Describe(), err)
	}
	return node, nil
}
