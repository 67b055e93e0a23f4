// File: nodes.go
// Title: Lambda CST Node Definitions
// Description: Defines the node types of the lambda concrete syntax tree.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cst

import (
	"fmt"

	"github.com/msto63/lambda/foundation/lambda/grammar"
	"github.com/msto63/lambda/foundation/lambda/token"
)

// Expr is implemented by every CST node
type Expr interface {
	// Span returns the byte range of the tokens the node was built from
	Span() token.Span
	// Form returns the grammar form of the node
	Form() grammar.Form
	// Accept dispatches to the matching Visitor method
	Accept(v Visitor) interface{}
	// String renders the node in structural notation, e.g. Def(x, Ident(x))
	String() string

	exprNode()
}

// Ident is a reference to a name
type Ident struct {
	Name string
	Pos  token.Span
}

// Bool is a boolean literal
type Bool struct {
	Value bool
	Pos   token.Span
}

// Def is a single-argument function literal: Arg: Body
type Def struct {
	Arg     string
	ArgSpan token.Span
	Body    Expr
	Pos     token.Span
}

// Call applies Func to Arg
type Call struct {
	Func Expr
	Arg  Expr
	Pos  token.Span
}

// IfElse is a conditional expression
type IfElse struct {
	Cond Expr
	Then Expr
	Else Expr
	Pos  token.Span
}

// Let binds Key to Value within Body
type Let struct {
	Key     string
	KeySpan token.Span
	Value   Expr
	Body    Expr
	Pos     token.Span
}

func (*Ident) exprNode()  {}
func (*Bool) exprNode()   {}
func (*Def) exprNode()    {}
func (*Call) exprNode()   {}
func (*IfElse) exprNode() {}
func (*Let) exprNode()    {}

func (e *Ident) Span() token.Span  { return e.Pos }
func (e *Bool) Span() token.Span   { return e.Pos }
func (e *Def) Span() token.Span    { return e.Pos }
func (e *Call) Span() token.Span   { return e.Pos }
func (e *IfElse) Span() token.Span { return e.Pos }
func (e *Let) Span() token.Span    { return e.Pos }

func (*Ident) Form() grammar.Form  { return grammar.FormIdent }
func (*Bool) Form() grammar.Form   { return grammar.FormBool }
func (*Def) Form() grammar.Form    { return grammar.FormDef }
func (*Call) Form() grammar.Form   { return grammar.FormCall }
func (*IfElse) Form() grammar.Form { return grammar.FormIfElse }
func (*Let) Form() grammar.Form    { return grammar.FormLet }

func (e *Ident) Accept(v Visitor) interface{}  { return v.VisitIdent(e) }
func (e *Bool) Accept(v Visitor) interface{}   { return v.VisitBool(e) }
func (e *Def) Accept(v Visitor) interface{}    { return v.VisitDef(e) }
func (e *Call) Accept(v Visitor) interface{}   { return v.VisitCall(e) }
func (e *IfElse) Accept(v Visitor) interface{} { return v.VisitIfElse(e) }
func (e *Let) Accept(v Visitor) interface{}    { return v.VisitLet(e) }

func (e *Ident) String() string {
	return fmt.Sprintf("Ident(%s)", e.Name)
}

func (e *Bool) String() string {
	return fmt.Sprintf("Bool(%t)", e.Value)
}

func (e *Def) String() string {
	return fmt.Sprintf("Def(%s, %s)", e.Arg, e.Body)
}

func (e *Call) String() string {
	return fmt.Sprintf("Call(%s, %s)", e.Func, e.Arg)
}

func (e *IfElse) String() string {
	return fmt.Sprintf("IfElse(%s, %s, %s)", e.Cond, e.Then, e.Else)
}

func (e *Let) String() string {
	return fmt.Sprintf("Let(%s, %s, %s)", e.Key, e.Value, e.Body)
}

// IsLiteral reports whether e is a literal value
func IsLiteral(e Expr) bool {
	_, ok := e.(*Bool)
	return ok
}

// Children returns the direct sub-expressions of e in source order
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Def:
		return []Expr{n.Body}
	case *Call:
		return []Expr{n.Func, n.Arg}
	case *IfElse:
		return []Expr{n.Cond, n.Then, n.Else}
	case *Let:
		return []Expr{n.Value, n.Body}
	default:
		return nil
	}
}
