// File: engine_test.go
// Title: Lambda Engine Tests
// Description: Tests for source and file parsing, error wrapping, input
//              limits and concurrent batch parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package lambda

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda/lexer"
	"github.com/msto63/lambda/foundation/lambda/parser"
	"github.com/msto63/lambda/foundation/lambda/token"
)

func newTestEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewNop()
	}
	return New(opts)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEngine_ParseSource(t *testing.T) {
	engine := newTestEngine(Options{})

	expr, err := engine.ParseSource("main.lc", "let id = x: x; in id true")
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}
	want := "Let(id, Def(x, Ident(x)), Call(Ident(id), Bool(true)))"
	if expr.String() != want {
		t.Errorf("got %s, want %s", expr, want)
	}
}

func TestEngine_SyntaxError(t *testing.T) {
	engine := newTestEngine(Options{})

	_, err := engine.ParseSource("bad.lc", "let x = ; in x")
	if err == nil {
		t.Fatal("expected error")
	}

	if got := err.Error(); got != "bad.lc: 1:9: unexpected ';', expected expression" {
		t.Errorf("Error() = %q", got)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeSyntax) {
		t.Errorf("code = %s", mdwerror.GetCode(err))
	}

	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatal("ParseError not reachable")
	}
	if perr.Kind != parser.UnexpectedToken || perr.Found.Kind != token.Semicolon {
		t.Errorf("ParseError = %+v", perr)
	}

	var merr *mdwerror.Error
	if !errors.As(err, &merr) {
		t.Fatal("structured error not reachable")
	}
	if v, _ := merr.Detail("kind"); v != "UnexpectedToken" {
		t.Errorf("kind detail = %v", v)
	}
	if v, _ := merr.Detail("variant"); v != "LAMBDA_UNEXPECTED_TOKEN" {
		t.Errorf("variant detail = %v", v)
	}
	if merr.Code().ExitCode() != 1 {
		t.Errorf("exit code = %d", merr.Code().ExitCode())
	}
}

func TestEngine_LexicalError(t *testing.T) {
	engine := newTestEngine(Options{})

	_, err := engine.ParseSource("", "f $")
	if err == nil {
		t.Fatal("expected error")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeLexical) {
		t.Errorf("code = %s", mdwerror.GetCode(err))
	}
	if !strings.HasPrefix(err.Error(), "<input>: 1:3:") {
		t.Errorf("Error() = %q", err.Error())
	}

	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) || lexErr.Token.Text != "$" {
		t.Errorf("lexer error not reachable: %v", err)
	}
}

func TestEngine_Tokenize(t *testing.T) {
	engine := newTestEngine(Options{})

	tokens, err := engine.Tokenize("t.lc", "f # c\nx", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 4 || tokens[1].Kind != token.Comment {
		t.Errorf("tokens = %v", tokens)
	}

	tokens, err = engine.Tokenize("t.lc", "f # c\nx", false)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Errorf("tokens = %v", tokens)
	}
}

func TestEngine_InputLimit(t *testing.T) {
	engine := newTestEngine(Options{MaxInputLength: 8})

	_, err := engine.ParseSource("big.lc", "let x = true; in x")
	if !mdwerror.HasCode(err, mdwerror.CodeInputTooLarge) {
		t.Fatalf("error = %v", err)
	}

	if _, err := engine.ParseSource("small.lc", "f x"); err != nil {
		t.Errorf("small input rejected: %v", err)
	}

	unlimited := newTestEngine(Options{MaxInputLength: -1})
	if _, err := unlimited.ParseSource("big.lc", "let x = true; in x"); err != nil {
		t.Errorf("unlimited engine rejected input: %v", err)
	}
}

func TestEngine_MaxDepth(t *testing.T) {
	engine := newTestEngine(Options{MaxDepth: 3})
	_, err := engine.ParseSource("deep.lc", "((((x))))")

	var perr *parser.ParseError
	if !errors.As(err, &perr) || perr.Kind != parser.NestingTooDeep {
		t.Errorf("error = %v", err)
	}
}

func TestEngine_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ok.lc", "# identity\nlet id = x: x;\nin id false\n")

	engine := newTestEngine(Options{})
	res := engine.ParseFile(path)
	if !res.OK() {
		t.Fatalf("ParseFile() error = %v", res.Err)
	}
	if res.Path != path || res.Tokens != 11 || res.Expr == nil {
		t.Errorf("result = %+v", res)
	}
	if !strings.HasPrefix(res.Source, "# identity") {
		t.Errorf("source = %q", res.Source)
	}

	missing := engine.ParseFile(filepath.Join(dir, "missing.lc"))
	if missing.OK() || !mdwerror.HasCode(missing.Err, mdwerror.CodeIO) {
		t.Errorf("missing file error = %v", missing.Err)
	}
	if !errors.Is(missing.Err, os.ErrNotExist) {
		t.Error("os.ErrNotExist not reachable")
	}
}

func TestEngine_ParseFiles(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := 0; i < 20; i++ {
		content := fmt.Sprintf("let v%d = true; in v%d", i, i)
		if i%5 == 0 {
			content = "let broken = ; in x"
		}
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("f%02d.lc", i), content))
	}

	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatText, Output: &buf})
	engine := New(Options{Logger: logger, Workers: 3})

	results := engine.ParseFiles(context.Background(), paths)
	if len(results) != len(paths) {
		t.Fatalf("got %d results", len(results))
	}

	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d is for %s, want %s", i, r.Path, paths[i])
		}
		wantOK := i%5 != 0
		if r.OK() != wantOK {
			t.Errorf("result %d OK = %v, err = %v", i, r.OK(), r.Err)
		}
		if wantOK && !strings.Contains(r.Expr.String(), fmt.Sprintf("v%d", i)) {
			t.Errorf("result %d has tree %s", i, r.Expr)
		}
	}

	if !strings.Contains(buf.String(), "parse batch completed") || !strings.Contains(buf.String(), "failed=4") {
		t.Errorf("batch not logged:\n%s", buf.String())
	}
}

func TestEngine_ParseFilesCanceled(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.lc", "a"),
		writeFile(t, dir, "b.lc", "b"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := newTestEngine(Options{Workers: 1}).ParseFiles(ctx, paths)
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d path = %s", i, r.Path)
		}
		if !mdwerror.HasCode(r.Err, mdwerror.CodeCanceled) || !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result %d err = %v", i, r.Err)
		}
	}
}

func TestEngine_ParseFilesEmpty(t *testing.T) {
	if results := newTestEngine(Options{}).ParseFiles(context.Background(), nil); len(results) != 0 {
		t.Errorf("got %d results", len(results))
	}
}
