// File: token.go
// Title: Lambda Tokens
// Description: Defines the token kinds of the lambda language, the Token
//              value produced by the tokenizer and the Source contract the
//              parser consumes tokens through.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import (
	"fmt"
	"strings"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// Special tokens
	EOF Kind = iota
	Illegal
	Comment // only emitted when the lexer is asked to keep comments

	// Words
	Ident // f, x1, lettuce
	True  // true
	False // false
	Let   // let
	In    // in
	If    // if
	Then  // then
	Else  // else

	// Punctuation
	LParen    // (
	RParen    // )
	Colon     // :
	Equals    // =
	Semicolon // ;
)

var kindNames = [...]string{
	EOF:       "end of input",
	Illegal:   "illegal character",
	Comment:   "comment",
	Ident:     "identifier",
	True:      "'true'",
	False:     "'false'",
	Let:       "'let'",
	In:        "'in'",
	If:        "'if'",
	Then:      "'then'",
	Else:      "'else'",
	LParen:    "'('",
	RParen:    "')'",
	Colon:     "':'",
	Equals:    "'='",
	Semicolon: "';'",
}

// String returns a readable name for use in error messages
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved words
func (k Kind) IsKeyword() bool {
	return k >= True && k <= Else
}

// IsTrivia reports whether k is skipped by the parser
func (k Kind) IsTrivia() bool {
	return k == Comment
}

// Span is a half-open byte range [Start, End) in the source text
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset lies inside the span
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Cover returns the smallest span containing both s and other
func (s Span) Cover(other Span) Span {
	out := s
	if other.Start < out.Start {
		out.Start = other.Start
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is a single lexical token with its position. Tokens are values and
// never change after the tokenizer produced them.
type Token struct {
	Kind   Kind
	Text   string
	Span   Span
	Line   int // 1-based
	Column int // 1-based, in bytes
}

// String returns a short description such as identifier "foo" or ';'
func (t Token) String() string {
	switch t.Kind {
	case Ident, Illegal:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	case Comment:
		return fmt.Sprintf("comment %q", strings.TrimSpace(t.Text))
	default:
		return t.Kind.String()
	}
}

// Position returns the token position as line:col
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// Source is the tokenizer contract. Next returns the following non-trivia
// token; once the input is exhausted it keeps returning an EOF token.
type Source interface {
	Next() Token
}

// SliceSource adapts an already tokenized slice to Source. Trivia tokens in
// the slice are skipped. A missing EOF is synthesized at the end of the last
// token.
type SliceSource struct {
	tokens []Token
	pos    int
}

// NewSliceSource creates a Source reading from tokens
func NewSliceSource(tokens []Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next implements Source
func (s *SliceSource) Next() Token {
	for s.pos < len(s.tokens) {
		tok := s.tokens[s.pos]
		s.pos++
		if tok.Kind.IsTrivia() {
			continue
		}
		if tok.Kind == EOF {
			s.pos = len(s.tokens)
		}
		return tok
	}

	eof := Token{Kind: EOF, Line: 1, Column: 1}
	if n := len(s.tokens); n > 0 {
		last := s.tokens[n-1]
		eof.Span = Span{Start: last.Span.End, End: last.Span.End}
		eof.Line = last.Line
		eof.Column = last.Column + last.Span.Len()
	}
	return eof
}
