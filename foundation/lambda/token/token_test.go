// File: token_test.go
// Title: Lambda Token Tests
// Description: Tests for kind names, spans and the slice source adapter.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "end of input"},
		{Ident, "identifier"},
		{Let, "'let'"},
		{Semicolon, "';'"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	for _, k := range []Kind{True, False, Let, In, If, Then, Else} {
		if !k.IsKeyword() {
			t.Errorf("%s should be a keyword", k)
		}
	}
	for _, k := range []Kind{EOF, Ident, LParen, Semicolon, Comment} {
		if k.IsKeyword() {
			t.Errorf("%s should not be a keyword", k)
		}
	}
}

func TestSpan(t *testing.T) {
	s := Span{Start: 2, End: 5}
	if s.Len() != 3 {
		t.Errorf("Len() = %d", s.Len())
	}
	if !s.Contains(2) || !s.Contains(4) || s.Contains(5) || s.Contains(1) {
		t.Errorf("Contains() wrong for %v", s)
	}
	if got := s.Cover(Span{Start: 0, End: 3}); got != (Span{Start: 0, End: 5}) {
		t.Errorf("Cover() = %v", got)
	}
	if got := s.Cover(Span{Start: 4, End: 9}); got != (Span{Start: 2, End: 9}) {
		t.Errorf("Cover() = %v", got)
	}
	if s.String() != "2..5" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Ident, Text: "foo"}, `identifier "foo"`},
		{Token{Kind: Illegal, Text: "$"}, `illegal character "$"`},
		{Token{Kind: Let, Text: "let"}, "'let'"},
		{Token{Kind: Comment, Text: "# note\n"}, `comment "# note"`},
		{Token{Kind: EOF}, "end of input"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSliceSource(t *testing.T) {
	tokens := []Token{
		{Kind: Ident, Text: "f", Span: Span{0, 1}, Line: 1, Column: 1},
		{Kind: Comment, Text: "# c", Span: Span{2, 5}, Line: 1, Column: 3},
		{Kind: Ident, Text: "x", Span: Span{6, 7}, Line: 1, Column: 7},
	}
	src := NewSliceSource(tokens)

	if tok := src.Next(); tok.Text != "f" {
		t.Fatalf("first token = %v", tok)
	}
	if tok := src.Next(); tok.Text != "x" {
		t.Fatalf("comment was not skipped, got %v", tok)
	}

	eof := src.Next()
	if eof.Kind != EOF {
		t.Fatalf("expected EOF, got %v", eof)
	}
	if eof.Span != (Span{7, 7}) || eof.Column != 8 {
		t.Errorf("synthesized EOF at %v col %d", eof.Span, eof.Column)
	}
	if again := src.Next(); again.Kind != EOF {
		t.Errorf("EOF is not sticky: %v", again)
	}
}

func TestSliceSource_StopsAtEOF(t *testing.T) {
	tokens := []Token{
		{Kind: EOF, Span: Span{0, 0}, Line: 1, Column: 1},
		{Kind: Ident, Text: "ignored"},
	}
	src := NewSliceSource(tokens)
	if tok := src.Next(); tok.Kind != EOF {
		t.Fatalf("got %v", tok)
	}
	if tok := src.Next(); tok.Kind != EOF {
		t.Errorf("tokens after EOF leaked: %v", tok)
	}
}
