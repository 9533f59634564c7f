package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format of literal and stdin sources: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "layerconf").
		WithSynopsis("layerconf [opts] command [opts]").
		WithDescription("layerconf merges, diffs and resolves layered configuration.\n\n" +
			"Sources are file paths or literal text: a source which is not a\n" +
			"readable file is parsed as text. \"-\" reads stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lcMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			DiffCommand(cfg),
			ResolveCommand(cfg),
			WhereCommand(cfg))
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge <src> [src...]").
		WithDescription("merge sources left to right, later sources taking precedence.\n" +
			"null members delete keys, arrays are replaced.").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-text] <a> <b>").
		WithDescription("print the overlay which turns a into b when merged onto it.\n" +
			"exits with status 1 when a and b differ.").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"set"},
			Description: "command line override, the value is yaml",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.setOpt), "(path=val)"),
		},
		&cli.Opt{
			Name:        "assert",
			Description: "boolean expression which the result must satisfy",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.assertOpt), "(expr)"),
		})
	return cli.NewCommandAt(&cfg.Resolve, "resolve").
		WithAliases("r", "res").
		WithSynopsis("resolve [-d default] [-u user] [-s path=val]... [-assert expr]... [-p path]").
		WithDescription("resolve the default, user and command line layers and print the result.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return resolve(cfg, cc, args)
		})
}

func WhereCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WhereConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Where, "where").
		WithSynopsis("where [-r relative]").
		WithDescription("print the default source path of this executable.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return where(cfg, cc, args)
		})
}
