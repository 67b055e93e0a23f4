// File: lexer.go
// Title: Lambda Lexical Analyzer
// Description: Converts lambda source text into tokens. Words match
//              [A-Za-z_0-9]+ by maximal munch and are classified as
//              keywords afterwards. Whitespace and '#' comments are trivia.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package lexer

import (
	"fmt"
	"unicode/utf8"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	"github.com/msto63/lambda/foundation/lambda/grammar"
	"github.com/msto63/lambda/foundation/lambda/token"
)

// Lexer performs lexical analysis of lambda source text
type Lexer struct {
	input        string
	pos          int // byte offset of the next unread character
	line         int // 1-based line of pos
	column       int // 1-based column of pos
	keepComments bool
}

// Option configures a Lexer
type Option func(*Lexer)

// WithComments makes Tokenize keep comment tokens. Next never returns them.
func WithComments() Option {
	return func(l *Lexer) {
		l.keepComments = true
	}
}

// New creates a new lexer for the given input
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Next returns the next non-trivia token. It implements token.Source.
// Illegal characters are returned as Illegal tokens; at the end of input
// Next keeps returning EOF.
func (l *Lexer) Next() token.Token {
	for {
		tok := l.scan()
		if !tok.Kind.IsTrivia() {
			return tok
		}
	}
}

// Tokenize returns all tokens up to and including EOF. It stops at the first
// illegal character and returns the tokens read so far with a *Error.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token

	for {
		tok := l.scan()
		if tok.Kind == token.Comment && !l.keepComments {
			continue
		}

		tokens = append(tokens, tok)

		switch tok.Kind {
		case token.EOF:
			return tokens, nil
		case token.Illegal:
			return tokens, &Error{Token: tok}
		}
	}
}

// Tokenize is a shorthand for New(input, opts...).Tokenize()
func Tokenize(input string, opts ...Option) ([]token.Token, error) {
	return New(input, opts...).Tokenize()
}

func (l *Lexer) scan() token.Token {
	l.skipWhitespace()

	start, line, column := l.pos, l.line, l.column
	if start >= len(l.input) {
		return token.Token{Kind: token.EOF, Span: token.Span{Start: start, End: start}, Line: line, Column: column}
	}

	ch := l.input[start]
	var kind token.Kind

	switch {
	case ch == '#':
		l.skipToLineEnd()
		kind = token.Comment
	case grammar.IsIdentByte(ch):
		l.readWord()
		kind = token.Ident
		if kw, ok := grammar.IsKeyword(l.input[start:l.pos]); ok {
			kind = kw
		}
	default:
		kind = punctuation(ch)
		if kind == token.Illegal {
			_, size := utf8.DecodeRuneInString(l.input[start:])
			l.advance(size)
		} else {
			l.advance(1)
		}
	}

	return token.Token{
		Kind:   kind,
		Text:   l.input[start:l.pos],
		Span:   token.Span{Start: start, End: l.pos},
		Line:   line,
		Column: column,
	}
}

func punctuation(ch byte) token.Kind {
	switch ch {
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	case ':':
		return token.Colon
	case '=':
		return token.Equals
	case ';':
		return token.Semicolon
	default:
		return token.Illegal
	}
}

// advance moves n bytes forward, none of which may be a newline
func (l *Lexer) advance(n int) {
	l.pos += n
	l.column += n
}

func (l *Lexer) readWord() {
	for l.pos < len(l.input) && grammar.IsIdentByte(l.input[l.pos]) {
		l.advance(1)
	}
}

func (l *Lexer) skipToLineEnd() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' && l.input[l.pos] != '\r' {
		l.advance(1)
	}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\f', '\v':
			l.advance(1)
		case '\r':
			// \r\n counts as one line break
			l.pos++
			if l.pos < len(l.input) && l.input[l.pos] == '\n' {
				l.pos++
			}
			l.line++
			l.column = 1
		case '\n':
			l.pos++
			l.line++
			l.column = 1
		default:
			return
		}
	}
}

// Error is a lexical error: a character outside the language's alphabet
type Error struct {
	Token token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: illegal character %q", e.Token.Line, e.Token.Column, e.Token.Text)
}

// Span returns the span of the offending character
func (e *Error) Span() token.Span {
	return e.Token.Span
}

// Code returns the error code used when the error is wrapped
func (e *Error) Code() mdwerror.Code {
	return mdwerror.CodeLexical
}
