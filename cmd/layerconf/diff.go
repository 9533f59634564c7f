package main

import (
	"fmt"

	"github.com/signadot/layerconf"
	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/ir"
	"github.com/signadot/layerconf/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getSource(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := getSource(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Text {
		return textDiff(cfg, cc, a, b)
	}
	d := layerconf.Diff(a, b)
	if d == nil {
		return nil
	}
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if cfg.WireOut {
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

// textDiff compares the encoded inputs line by line. Unlike the tree diff
// it also shows members of a missing from b.
func textDiff(cfg *DiffConfig, cc *cli.Context, a, b *ir.Node) error {
	lines, err := libdiff.Nodes(a, b)
	if err != nil {
		return err
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := libdiff.Write(cc.Out, lines, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
