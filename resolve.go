package layerconf

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/format"
	"github.com/signadot/layerconf/gomap"
	"github.com/signadot/layerconf/ir"
	"github.com/signadot/layerconf/source"
)

// Resolver resolves layered configuration. It is not modified after New
// and may be used from several goroutines.
type Resolver struct {
	log           *zap.Logger
	reader        *source.Reader
	literalFormat *format.Format
	strict        bool
	omitNulls     bool
}

type Option func(*Resolver)

// WithLogger sets the logger receiving stage by stage output. Trees are
// logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// WithReader replaces the source reader, for instance to read from
// something other than the local filesystem.
func WithReader(rd *source.Reader) Option {
	return func(r *Resolver) { r.reader = rd }
}

// WithLiteralFormat sets the format of sources which are not readable
// files. The default is JSON.
func WithLiteralFormat(f format.Format) Option {
	return func(r *Resolver) { r.literalFormat = &f }
}

// WithStrictDecode makes keys which the target type does not have a decode
// error. Otherwise they are logged as a warning.
func WithStrictDecode(v bool) Option {
	return func(r *Resolver) { r.strict = v }
}

// WithOmitCmdlineNulls drops null members of the encoded command line
// value, so that unset pointer or slice fields inherit from the lower
// layers instead of deleting them.
func WithOmitCmdlineNulls(v bool) Option {
	return func(r *Resolver) { r.omitNulls = v }
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		log:    zap.NewNop(),
		reader: source.NewReader(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.reader == nil {
		r.reader = source.NewReader()
	}
	if r.literalFormat != nil {
		rd := *r.reader
		rd.LiteralFormat = *r.literalFormat
		r.reader = &rd
	}
	return r
}

// Resolve resolves a T from def, user and cmdline with a Resolver built
// from opts.
//
// def is always read; an empty def names source.DefaultPath(). An empty
// user and a nil cmdline are skipped.
func Resolve[T any](def, user source.Source, cmdline *T, opts ...Option) (T, error) {
	return ResolveWith(New(opts...), def, user, cmdline)
}

// ResolveWith is Resolve with an existing Resolver.
func ResolveWith[T any](r *Resolver, def, user source.Source, cmdline *T) (T, error) {
	var zero T
	var enc func() (*ir.Node, error)
	if cmdline != nil {
		enc = func() (*ir.Node, error) {
			return gomap.ToIR(cmdline, gomap.OmitNulls(r.omitNulls))
		}
	}
	tree, err := r.tree(def, user, enc)
	if err != nil {
		return zero, err
	}
	var res T
	var unused []string
	if err := gomap.FromIR(tree, &res, gomap.Strict(r.strict), gomap.UnusedKeys(&unused)); err != nil {
		return zero, &ConfigError{Stage: StageDecode, Err: err}
	}
	if len(unused) != 0 {
		r.log.Warn("configuration keys not used", zap.Strings("keys", unused))
	}
	r.log.Debug("conf final", zap.Any("config", res))
	return res, nil
}

// Tree runs the resolution without decoding and returns the merged tree.
// cmdline is consumed by the merge.
func (r *Resolver) Tree(def, user source.Source, cmdline *ir.Node) (*ir.Node, error) {
	var enc func() (*ir.Node, error)
	if cmdline != nil {
		enc = func() (*ir.Node, error) { return cmdline, nil }
	}
	return r.tree(def, user, enc)
}

func (r *Resolver) tree(def, user source.Source, cmdline func() (*ir.Node, error)) (*ir.Node, error) {
	if def == "" {
		p, err := source.DefaultPath()
		if err != nil {
			return nil, &ConfigError{Stage: StageDefault, Err: err}
		}
		r.log.Info("no default source given", zap.String("path", p))
		def = source.Source(p)
	}
	acc, err := r.acquire(StageDefault, def)
	if err != nil {
		return nil, err
	}
	r.logTree("conf default", acc)

	if user == "" {
		r.log.Info("no user source given")
	} else {
		u, err := r.acquire(StageUser, user)
		if err != nil {
			return nil, err
		}
		r.logTree("conf user", u)
		acc = Merge(acc, u)
		r.logTree("conf merged with user", acc)
	}

	if cmdline != nil {
		c, err := cmdline()
		if err != nil {
			return nil, &ConfigError{Stage: StageCmdline, Err: err}
		}
		r.logTree("conf cmdline", c)
		acc = Merge(acc, c)
		r.logTree("conf merged with cmdline", acc)
	}
	return acc, nil
}

func (r *Resolver) acquire(stage Stage, src source.Source) (*ir.Node, error) {
	text := r.reader.Read(src)
	switch text.Origin {
	case source.File:
		r.log.Debug("read source file",
			zap.Stringer("stage", stage),
			zap.String("path", text.Path),
			zap.Stringer("format", text.Format))
	default:
		r.log.Debug("source is not a readable file, using it as text",
			zap.Stringer("stage", stage),
			zap.Stringer("format", text.Format),
			zap.NamedError("read", text.ReadErr))
	}
	node, err := text.Parse()
	if err != nil {
		return nil, &ConfigError{
			Stage:  stage,
			Source: src,
			Origin: text.Origin,
			Err:    err,
		}
	}
	return node, nil
}

// logTree renders node when called: the accumulated tree is merged into
// in place afterwards.
func (r *Resolver) logTree(msg string, node *ir.Node) {
	ce := r.log.Check(zap.DebugLevel, msg)
	if ce == nil {
		return
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		ce.Write(zap.NamedError("tree", err))
		return
	}
	ce.Write(zap.String("tree", buf.String()))
}
