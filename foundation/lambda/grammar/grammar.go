// File: grammar.go
// Title: Lambda Grammar Table
// Description: Static description of the expression forms of the lambda
//              language: their anchors, precedence and associativity, the
//              set of tokens that can begin an expression and the keyword
//              post-filter applied to words.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package grammar holds the declarative grammar table the parser consults
// when deciding whether to extend or close an expression.
//
//	expr   := let | call
//	let    := 'let' IDENT '=' expr ';' ['in'] expr      (prec 1, right)
//	call   := primary { primary }                       (prec 2, left)
//	primary:= IDENT ':' expr                            (def, prec 0)
//	        | 'if' expr 'then' expr 'else' expr         (prec 0)
//	        | '(' expr ')'                              (prec 0)
//	        | IDENT | 'true' | 'false'
package grammar

import (
	"github.com/msto63/lambda/foundation/lambda/token"
)

// Precedence levels, higher binds tighter
const (
	PrecStructural = 0
	PrecLet        = 1
	PrecCall       = 2
)

// Form identifies one production of the grammar
type Form int

const (
	FormIdent Form = iota
	FormBool
	FormDef
	FormCall
	FormIfElse
	FormLet
	FormGroup
)

func (f Form) String() string {
	switch f {
	case FormIdent:
		return "ident"
	case FormBool:
		return "bool"
	case FormDef:
		return "def"
	case FormCall:
		return "call"
	case FormIfElse:
		return "if_else"
	case FormLet:
		return "let"
	case FormGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Assoc is the associativity of a form
type Assoc int

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// Rule describes one form of the grammar
type Rule struct {
	Form       Form
	Precedence int
	Assoc      Assoc
	Anchors    []token.Kind // keyword and punctuation tokens, in order
	Pattern    string
}

var rules = []Rule{
	{Form: FormIdent, Precedence: PrecStructural, Assoc: AssocNone,
		Anchors: []token.Kind{token.Ident}, Pattern: "IDENT"},
	{Form: FormBool, Precedence: PrecStructural, Assoc: AssocNone,
		Anchors: []token.Kind{token.True}, Pattern: "'true' | 'false'"},
	{Form: FormDef, Precedence: PrecStructural, Assoc: AssocNone,
		Anchors: []token.Kind{token.Ident, token.Colon}, Pattern: "IDENT ':' expr"},
	{Form: FormCall, Precedence: PrecCall, Assoc: AssocLeft,
		Pattern: "expr expr"},
	{Form: FormIfElse, Precedence: PrecStructural, Assoc: AssocNone,
		Anchors: []token.Kind{token.If, token.Then, token.Else}, Pattern: "'if' expr 'then' expr 'else' expr"},
	{Form: FormLet, Precedence: PrecLet, Assoc: AssocRight,
		Anchors: []token.Kind{token.Let, token.Ident, token.Equals, token.Semicolon}, Pattern: "'let' IDENT '=' expr ';' ['in'] expr"},
	{Form: FormGroup, Precedence: PrecStructural, Assoc: AssocNone,
		Anchors: []token.Kind{token.LParen, token.RParen}, Pattern: "'(' expr ')'"},
}

// Rules returns a copy of the grammar table
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Lookup returns the rule for form. ok is false for an unknown form.
func Lookup(form Form) (Rule, bool) {
	for _, r := range rules {
		if r.Form == form {
			return r, true
		}
	}
	return Rule{}, false
}

var exprStart = []token.Kind{
	token.Ident, token.True, token.False, token.LParen, token.Let, token.If,
}

// CanBeginExpr reports whether a token of kind k can start an expression
func CanBeginExpr(k token.Kind) bool {
	switch k {
	case token.Ident, token.True, token.False, token.LParen, token.Let, token.If:
		return true
	}
	return false
}

// ExprStart returns the kinds that can begin an expression
func ExprStart() []token.Kind {
	out := make([]token.Kind, len(exprStart))
	copy(out, exprStart)
	return out
}

var keywords = map[string]token.Kind{
	"true":  token.True,
	"false": token.False,
	"let":   token.Let,
	"in":    token.In,
	"if":    token.If,
	"then":  token.Then,
	"else":  token.Else,
}

// IsKeyword classifies a complete word. Only exact matches are keywords,
// so "lettuce" and "iffy" stay identifiers.
func IsKeyword(word string) (token.Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// Keywords returns the reserved words
func Keywords() []string {
	return []string{"true", "false", "let", "in", "if", "then", "else"}
}

// IsIdentByte reports whether b belongs to the word class [A-Za-z_0-9]
func IsIdentByte(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' || b == '_'
}

// IsValidIdent reports whether s is a word that is not a keyword
func IsValidIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsIdentByte(s[i]) {
			return false
		}
	}
	_, kw := IsKeyword(s)
	return !kw
}
