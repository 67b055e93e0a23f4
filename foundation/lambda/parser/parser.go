// File: parser.go
// Title: Lambda Precedence-Climbing Parser
// Description: Turns a token stream into a single CST expression.
//              Application is parsed by precedence climbing, let and the
//              structural forms by recursive descent, and the Def/Call
//              ambiguity is resolved with one token of lookahead.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/foundation/lambda/cst"
	"github.com/msto63/lambda/foundation/lambda/grammar"
	"github.com/msto63/lambda/foundation/lambda/token"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero
const DefaultMaxDepth = 10000

// Options configures parser behavior
type Options struct {
	// Logger receives debug output; nil disables logging
	Logger *mdwlog.Logger
	// MaxDepth bounds the expression nesting; negative disables the check
	MaxDepth int
}

// Parser holds configuration only. All parse state is local to a call, so a
// Parser may be shared between goroutines.
type Parser struct {
	logger   *mdwlog.Logger
	maxDepth int
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.NewNop()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		logger:   opts.Logger.WithField("component", "lambda-parser"),
		maxDepth: opts.MaxDepth,
	}
}

var defaultParser = New(Options{})

// Parse parses a complete token slice with default options
func Parse(tokens []token.Token) (cst.Expr, error) {
	return defaultParser.Parse(tokens)
}

// ParseSource parses all tokens of src with default options
func ParseSource(src token.Source) (cst.Expr, error) {
	return defaultParser.ParseSource(src)
}

// Parse parses a complete token slice. A missing EOF token is implied.
func (p *Parser) Parse(tokens []token.Token) (cst.Expr, error) {
	return p.ParseSource(token.NewSliceSource(tokens))
}

// ParseSource parses src until EOF. It succeeds only if the whole stream
// forms exactly one expression; otherwise it returns a *ParseError.
func (p *Parser) ParseSource(src token.Source) (cst.Expr, error) {
	s := newState(src, p.maxDepth)
	if p.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		s.onConsume = func(tok token.Token) {
			p.logger.Trace("consume", mdwlog.Fields{"token": tok.String(), "pos": tok.Position()})
		}
	}

	expr, err := s.parseExpr(grammar.PrecStructural)
	if err == nil && s.cur.Kind != token.EOF {
		err = &ParseError{Kind: UnexpectedToken, Expected: []token.Kind{token.EOF}, Found: s.cur}
	}

	if err != nil {
		p.logger.Debug("parse failed", mdwlog.Fields{
			"error":    err.Error(),
			"consumed": s.consumed,
		})
		return nil, err
	}

	p.logger.Debug("parse completed", mdwlog.Fields{
		"form":     expr.Form().String(),
		"consumed": s.consumed,
	})
	return expr, nil
}

// state is the per-call parse state: the current token, one token of
// lookahead and the last consumed token for span ends.
type state struct {
	src       token.Source
	cur       token.Token
	peek      token.Token
	prev      token.Token
	depth     int
	maxDepth  int
	consumed  int
	onConsume func(token.Token)
}

func newState(src token.Source, maxDepth int) *state {
	s := &state{src: src, maxDepth: maxDepth}
	s.cur = s.fetch()
	s.peek = s.cur
	if s.cur.Kind != token.EOF {
		s.peek = s.fetch()
	}
	return s
}

func (s *state) fetch() token.Token {
	for {
		tok := s.src.Next()
		if !tok.Kind.IsTrivia() {
			return tok
		}
	}
}

// advance consumes the current token. It is never called on EOF.
func (s *state) advance() token.Token {
	tok := s.cur
	s.prev = tok
	s.cur = s.peek
	if s.peek.Kind != token.EOF {
		s.peek = s.fetch()
	}
	s.consumed++
	if s.onConsume != nil {
		s.onConsume(tok)
	}
	return tok
}

// parseExpr parses a primary and extends it into left-associative calls
// while the next token can begin an expression.
func (s *state) parseExpr(minPrec int) (cst.Expr, error) {
	s.depth++
	defer func() { s.depth-- }()
	if s.maxDepth > 0 && s.depth > s.maxDepth {
		return nil, &ParseError{Kind: NestingTooDeep, Found: s.cur, Limit: s.maxDepth}
	}

	start := s.cur.Span.Start
	acc, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}

	for minPrec <= grammar.PrecCall && grammar.CanBeginExpr(s.cur.Kind) {
		arg, err := s.parsePrimary()
		if err != nil {
			return nil, err
		}
		acc = &cst.Call{
			Func: acc,
			Arg:  arg,
			Pos:  token.Span{Start: start, End: s.prev.Span.End},
		}
	}

	return acc, nil
}

func (s *state) parsePrimary() (cst.Expr, error) {
	switch s.cur.Kind {
	case token.LParen:
		return s.parseGroup()
	case token.True, token.False:
		tok := s.advance()
		return &cst.Bool{Value: tok.Kind == token.True, Pos: tok.Span}, nil
	case token.If:
		return s.parseIfElse()
	case token.Let:
		return s.parseLet()
	case token.Ident:
		// an identifier directly followed by ':' is the argument of a Def
		if s.peek.Kind == token.Colon {
			return s.parseDef()
		}
		tok := s.advance()
		return &cst.Ident{Name: tok.Text, Pos: tok.Span}, nil
	default:
		return nil, s.missingExpr()
	}
}

// parseGroup parses '(' expr ')'. The parentheses produce no node.
func (s *state) parseGroup() (cst.Expr, error) {
	open := s.advance()

	inner, err := s.parseExpr(grammar.PrecStructural)
	if err != nil {
		return nil, err
	}

	if s.cur.Kind != token.RParen {
		return nil, &ParseError{
			Kind:     UnclosedParen,
			Expected: []token.Kind{token.RParen},
			Found:    s.cur,
			Open:     open,
		}
	}
	s.advance()

	return inner, nil
}

// parseDef parses IDENT ':' expr
func (s *state) parseDef() (cst.Expr, error) {
	arg := s.advance()
	s.advance() // ':'

	body, err := s.parseExpr(grammar.PrecStructural)
	if err != nil {
		return nil, err
	}

	return &cst.Def{
		Arg:     arg.Text,
		ArgSpan: arg.Span,
		Body:    body,
		Pos:     token.Span{Start: arg.Span.Start, End: s.prev.Span.End},
	}, nil
}

// parseIfElse parses 'if' expr 'then' expr 'else' expr
func (s *state) parseIfElse() (cst.Expr, error) {
	open := s.advance()

	cond, err := s.parseExpr(grammar.PrecStructural)
	if err != nil {
		return nil, err
	}
	if _, err := s.expectPart(token.Then, UnterminatedIfElse, open); err != nil {
		return nil, err
	}

	then, err := s.parseExpr(grammar.PrecStructural)
	if err != nil {
		return nil, err
	}
	if _, err := s.expectPart(token.Else, UnterminatedIfElse, open); err != nil {
		return nil, err
	}

	els, err := s.parseExpr(grammar.PrecStructural)
	if err != nil {
		return nil, err
	}

	return &cst.IfElse{
		Cond: cond,
		Then: then,
		Else: els,
		Pos:  token.Span{Start: open.Span.Start, End: s.prev.Span.End},
	}, nil
}

// parseLet parses 'let' IDENT '=' expr ';' ['in'] expr. The body is parsed
// at let precedence, so it extends as far right as possible and a following
// let nests inside it.
func (s *state) parseLet() (cst.Expr, error) {
	open := s.advance()

	key, err := s.expectPart(token.Ident, UnterminatedLet, open)
	if err != nil {
		return nil, err
	}
	if _, err := s.expectPart(token.Equals, UnterminatedLet, open); err != nil {
		return nil, err
	}

	value, err := s.parseExpr(grammar.PrecStructural)
	if err != nil {
		return nil, err
	}
	if _, err := s.expectPart(token.Semicolon, UnterminatedLet, open); err != nil {
		return nil, err
	}
	if s.cur.Kind == token.In {
		s.advance()
	}

	body, err := s.parseExpr(grammar.PrecLet)
	if err != nil {
		return nil, err
	}

	return &cst.Let{
		Key:     key.Text,
		KeySpan: key.Span,
		Value:   value,
		Body:    body,
		Pos:     token.Span{Start: open.Span.Start, End: s.prev.Span.End},
	}, nil
}

func (s *state) expectPart(kind token.Kind, errKind ErrorKind, open token.Token) (token.Token, error) {
	if s.cur.Kind == kind {
		return s.advance(), nil
	}
	return token.Token{}, &ParseError{
		Kind:     errKind,
		Expected: []token.Kind{kind},
		Found:    s.cur,
		Open:     open,
	}
}

func (s *state) missingExpr() error {
	kind := UnexpectedToken
	if s.cur.Kind == token.EOF {
		kind = UnexpectedEndOfInput
	}
	return &ParseError{Kind: kind, Expected: grammar.ExprStart(), Found: s.cur}
}
