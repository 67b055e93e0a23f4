// File: engine.go
// Title: Lambda Engine
// Description: High-level interface combining lexer and parser. Adds input
//              limits, structured error wrapping, timing and concurrent
//              multi-file parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package lambda

import (
	"context"
	"errors"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda/cst"
	"github.com/msto63/lambda/foundation/lambda/lexer"
	"github.com/msto63/lambda/foundation/lambda/parser"
	"github.com/msto63/lambda/foundation/lambda/token"
)

// DefaultMaxInputLength is the source size limit used when
// Options.MaxInputLength is zero
const DefaultMaxInputLength = 1 << 20

// Options configures the engine
type Options struct {
	Logger *mdwlog.Logger
	// MaxInputLength limits the source size in bytes; negative disables
	MaxInputLength int
	// MaxDepth is passed to the parser
	MaxDepth int
	// Workers bounds ParseFiles concurrency; defaults to the number of CPUs
	Workers int
}

// Engine parses lambda source. It is safe for concurrent use.
type Engine struct {
	parser  *parser.Parser
	logger  *mdwlog.Logger
	options Options
}

// Result is the outcome of parsing one file
type Result struct {
	Path     string
	Source   string
	Tokens   int
	Expr     cst.Expr
	Err      error
	Duration time.Duration
}

// OK reports whether the file parsed successfully
func (r Result) OK() bool {
	return r.Err == nil
}

// New creates a new engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	logger := opts.Logger.WithField("component", "lambda-engine")

	return &Engine{
		parser: parser.New(parser.Options{
			Logger:   opts.Logger,
			MaxDepth: opts.MaxDepth,
		}),
		logger:  logger,
		options: opts,
	}
}

// Tokenize splits src into tokens. With keepComments the comment tokens are
// included. name is used in error messages only.
func (e *Engine) Tokenize(name, src string, keepComments bool) ([]token.Token, error) {
	if err := e.checkLength(name, src); err != nil {
		return nil, err
	}

	var opts []lexer.Option
	if keepComments {
		opts = append(opts, lexer.WithComments())
	}

	tokens, err := lexer.Tokenize(src, opts...)
	if err != nil {
		return tokens, wrapError(name, err)
	}
	return tokens, nil
}

// ParseSource parses src into a tree
func (e *Engine) ParseSource(name, src string) (cst.Expr, error) {
	res := e.parse(name, src)
	return res.Expr, res.Err
}

// ParseFile reads and parses the file at path
func (e *Engine) ParseFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{
			Path: path,
			Err: mdwerror.Wrap(err, path).
				WithCode(mdwerror.CodeIO).
				WithOperation("lambda.ParseFile"),
		}
	}
	return e.parse(path, string(data))
}

// ParseFiles parses paths concurrently using at most Options.Workers
// goroutines. Results are returned in the order of paths. A failing file
// does not stop the others; cancelling ctx marks unstarted files as
// canceled.
func (e *Engine) ParseFiles(ctx context.Context, paths []string) []Result {
	results := make([]Result, len(paths))

	timer := e.logger.StartTimer("parse batch").WithField("files", len(paths))
	defer timer.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.Workers)

	for i, path := range paths {
		i, path := i, path
		if gctx.Err() != nil {
			results[i] = canceled(path, gctx.Err())
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = canceled(path, err)
				return nil
			}
			results[i] = e.ParseFile(path)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	timer.WithField("failed", failed)

	return results
}

func canceled(path string, err error) Result {
	return Result{
		Path: path,
		Err: mdwerror.Wrap(err, path).
			WithCode(mdwerror.CodeCanceled).
			WithOperation("lambda.ParseFiles"),
	}
}

func (e *Engine) parse(name, src string) Result {
	start := time.Now()
	res := Result{Path: name, Source: src}

	timer := e.logger.StartTimer("parse").WithField("file", displayName(name))

	tokens, err := e.Tokenize(name, src, false)
	if err == nil {
		res.Tokens = len(tokens)
		res.Expr, err = e.parser.Parse(tokens)
		if err != nil {
			err = wrapError(name, err)
		}
	}

	res.Err = err
	res.Duration = time.Since(start)

	if err != nil {
		timer.WithField("success", false).WithField("code", mdwerror.GetCode(err).String()).Stop()
	} else {
		timer.WithField("tokens", res.Tokens).WithField("nodes", cst.Size(res.Expr)).Stop()
	}

	return res
}

func (e *Engine) checkLength(name, src string) error {
	limit := e.options.MaxInputLength
	if limit < 0 || len(src) <= limit {
		return nil
	}
	return mdwerror.Newf("%s: input of %d bytes exceeds limit of %d", displayName(name), len(src), limit).
		WithCode(mdwerror.CodeInputTooLarge).
		WithOperation("lambda.Tokenize").
		WithDetail("size", len(src)).
		WithDetail("limit", limit)
}

// wrapError turns lexer and parser errors into structured errors
func wrapError(name string, err error) error {
	name = displayName(name)

	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return mdwerror.Wrap(err, name).
			WithCode(mdwerror.CodeLexical).
			WithOperation("lambda.Tokenize").
			WithDetail("file", name).
			WithDetail("line", lexErr.Token.Line).
			WithDetail("column", lexErr.Token.Column)
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return mdwerror.Wrap(err, name).
			WithCode(mdwerror.CodeSyntax).
			WithOperation("lambda.Parse").
			WithDetail("file", name).
			WithDetail("kind", parseErr.Kind.String()).
			WithDetail("variant", parseErr.Code().String()).
			WithDetail("line", parseErr.Found.Line).
			WithDetail("column", parseErr.Found.Column)
	}

	return mdwerror.Wrap(err, name).WithCode(mdwerror.CodeInternal)
}

func displayName(name string) string {
	if name == "" {
		return "<input>"
	}
	return name
}
