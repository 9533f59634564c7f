package main

import (
	"fmt"

	"github.com/signadot/layerconf"
	"github.com/signadot/layerconf/encode"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one source", cli.ErrUsage)
	}
	acc, err := getSource(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		overlay, err := getSource(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		acc = layerconf.Merge(acc, overlay)
	}
	if err := encode.Encode(acc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.WireOut {
		_, err = cc.Out.Write([]byte("\n"))
	}
	return err
}
