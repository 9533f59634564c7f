package main

import (
	"fmt"

	"github.com/signadot/layerconf/source"

	"github.com/scott-cotton/cli"
)

func where(cfg *WhereConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Where.Parse(cc, args)
	if err != nil {
		cfg.Where.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: where takes no arguments", cli.ErrUsage)
	}
	p, err := source.DefaultPath()
	if err != nil {
		return err
	}
	if cfg.Relative != "" {
		p, err = source.RelativeTo(cfg.Relative, p)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(cc.Out, p)
	return err
}
