// File: errors.go
// Title: Lambda Parse Errors
// Description: Defines the ParseError taxonomy reported by the parser.
//              Every error carries the offending token and its span.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	"github.com/msto63/lambda/foundation/lambda/grammar"
	"github.com/msto63/lambda/foundation/lambda/token"
)

// ErrorKind classifies a ParseError
type ErrorKind int

const (
	// UnexpectedToken: a token that fits nowhere at this point
	UnexpectedToken ErrorKind = iota
	// UnclosedParen: a '(' whose matching ')' is missing
	UnclosedParen
	// UnterminatedLet: a let missing its name, '=' or ';'
	UnterminatedLet
	// UnterminatedIfElse: an if missing 'then' or 'else'
	UnterminatedIfElse
	// UnexpectedEndOfInput: the input ended where an expression was required
	UnexpectedEndOfInput
	// NestingTooDeep: the expression exceeds the configured nesting limit
	NestingTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnclosedParen:
		return "UnclosedParen"
	case UnterminatedLet:
		return "UnterminatedLet"
	case UnterminatedIfElse:
		return "UnterminatedIfElse"
	case UnexpectedEndOfInput:
		return "UnexpectedEndOfInput"
	case NestingTooDeep:
		return "NestingTooDeep"
	default:
		return "Unknown"
	}
}

// Code returns the error code of the kind
func (k ErrorKind) Code() mdwerror.Code {
	switch k {
	case UnexpectedToken:
		return mdwerror.CodeUnexpectedToken
	case UnclosedParen:
		return mdwerror.CodeUnclosedParen
	case UnterminatedLet:
		return mdwerror.CodeUnterminatedLet
	case UnterminatedIfElse:
		return mdwerror.CodeUnterminatedIf
	case UnexpectedEndOfInput:
		return mdwerror.CodeUnexpectedEOF
	case NestingTooDeep:
		return mdwerror.CodeNestingTooDeep
	default:
		return mdwerror.CodeSyntax
	}
}

// ParseError is a syntax error. Parsing stops at the first one.
type ParseError struct {
	Kind     ErrorKind
	Expected []token.Kind // kinds that would have been accepted
	Found    token.Token  // the offending token
	Open     token.Token  // opening token of the unterminated form, if any
	Limit    int          // nesting limit for NestingTooDeep
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Found.Line, e.Found.Column, e.Message())
}

// Message returns the error text without position prefix
func (e *ParseError) Message() string {
	switch e.Kind {
	case UnclosedParen:
		return fmt.Sprintf("unclosed '(' opened at %s: expected %s, found %s",
			e.Open.Position(), describeExpected(e.Expected), e.Found)
	case UnterminatedLet:
		return fmt.Sprintf("unterminated let starting at %s: expected %s, found %s",
			e.Open.Position(), describeExpected(e.Expected), e.Found)
	case UnterminatedIfElse:
		return fmt.Sprintf("unterminated if starting at %s: expected %s, found %s",
			e.Open.Position(), describeExpected(e.Expected), e.Found)
	case UnexpectedEndOfInput:
		return fmt.Sprintf("unexpected end of input, expected %s", describeExpected(e.Expected))
	case NestingTooDeep:
		return fmt.Sprintf("expression nested deeper than %d levels", e.Limit)
	default:
		return fmt.Sprintf("unexpected %s, expected %s", e.Found, describeExpected(e.Expected))
	}
}

// Span returns the span of the offending token
func (e *ParseError) Span() token.Span {
	return e.Found.Span
}

// Code returns the error code of the kind
func (e *ParseError) Code() mdwerror.Code {
	return e.Kind.Code()
}

func describeExpected(kinds []token.Kind) string {
	if isExprStart(kinds) {
		return "expression"
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	default:
		return "one of " + strings.Join(names, ", ")
	}
}

func isExprStart(kinds []token.Kind) bool {
	if len(kinds) != len(grammar.ExprStart()) {
		return false
	}
	for _, k := range kinds {
		if !grammar.CanBeginExpr(k) {
			return false
		}
	}
	return true
}
