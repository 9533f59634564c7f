package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/format"
	"github.com/signadot/layerconf/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log resolution stages to stderr'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format of literal and stdin sources, nil meaning JSON
// for literals and detection from the suffix for files.
func (cfg *MainConfig) inFormat() *format.Format {
	if cfg.InFormat != nil {
		return cfg.InFormat
	}
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	default:
		return nil
	}
	return &f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) logger() *zap.Logger {
	if !cfg.Verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='show a line diff of the two inputs'"`

	Diff *cli.Command
}

type ResolveConfig struct {
	*MainConfig
	Default string `cli:"name=d aliases=default desc='default source, file or literal (default: see where)'"`
	User    string `cli:"name=u aliases=user desc='user source, file or literal'"`
	Path    string `cli:"name=p aliases=path desc='print only the value at a dotted path'"`

	Set     *ir.Node
	Asserts []string

	Resolve *cli.Command
}

type WhereConfig struct {
	*MainConfig
	Relative string `cli:"name=r aliases=relative desc='resolve a path relative to the default source'"`

	Where *cli.Command
}
