package main

import (
	"fmt"
	"strings"

	"github.com/signadot/layerconf"
	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/format"
	"github.com/signadot/layerconf/ir"
	"github.com/signadot/layerconf/source"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: resolve takes no arguments, got %v", cli.ErrUsage, args)
	}
	opts := []layerconf.Option{
		layerconf.WithLogger(cfg.logger()),
		layerconf.WithReader(cfg.reader()),
	}
	r := layerconf.New(opts...)
	tree, err := r.Tree(source.Source(cfg.Default), source.Source(cfg.User), cfg.Set)
	if err != nil {
		return err
	}
	if err := checkAsserts(tree, cfg.Asserts); err != nil {
		return err
	}
	tree, err = selectPath(tree, cfg.Path)
	if err != nil {
		return err
	}
	if err := encode.Encode(tree, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.WireOut {
		_, err = cc.Out.Write([]byte("\n"))
	}
	return err
}

// setOpt records a path=val override. val is read as yaml, so "-s
// port=80" sets a number and "-s peers=[a,b]" an array. A null value
// deletes the key from the result.
func (cfg *ResolveConfig) setOpt(_ *cli.Context, a string) (any, error) {
	node, err := setOverride(cfg.Set, a)
	if err != nil {
		return nil, err
	}
	cfg.Set = node
	return 0, nil
}

func setOverride(dst *ir.Node, a string) (*ir.Node, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("%w: argument %q expected path=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return nil, fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, key, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, key, err)
	}
	if dst == nil {
		dst = ir.FromKeyVals(nil)
	}
	if err := dst.SetPath(key, node); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return dst, nil
}

// selectPath returns the member of tree at the dotted path p, or tree
// itself when p is empty.
func selectPath(tree *ir.Node, p string) (*ir.Node, error) {
	if p == "" {
		return tree, nil
	}
	res := tree.GetPath(p)
	if res == nil {
		return nil, fmt.Errorf("path %q not found in result", p)
	}
	return res, nil
}

func (cfg *ResolveConfig) assertOpt(_ *cli.Context, a string) (any, error) {
	cfg.Asserts = append(cfg.Asserts, a)
	return 0, nil
}

// checkAsserts evaluates each assertion with the members of tree as
// variables. A tree which is not an object is available as "config".
func checkAsserts(tree *ir.Node, asserts []string) error {
	if len(asserts) == 0 {
		return nil
	}
	env, ok := ir.ToAny(tree).(map[string]any)
	if !ok {
		env = map[string]any{"config": ir.ToAny(tree)}
	}
	for _, src := range asserts {
		prg, err := expr.Compile(src, expr.Env(env), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: assertion %q: %w", cli.ErrUsage, src, err)
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("assertion %q: %w", src, err)
		}
		if pass, _ := out.(bool); !pass {
			return fmt.Errorf("assertion %q failed on %s", src,
				encode.MustString(tree, encode.EncodeWire(true), encode.EncodeFormat(format.JSONFormat)))
		}
	}
	return nil
}
