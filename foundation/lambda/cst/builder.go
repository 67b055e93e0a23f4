// File: builder.go
// Title: Lambda CST Builders
// Description: Constructors for building trees in code, mainly for tests
//              and generators. Built nodes carry zero spans.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cst

func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

func NewBool(value bool) *Bool {
	return &Bool{Value: value}
}

func NewDef(arg string, body Expr) *Def {
	return &Def{Arg: arg, Body: body}
}

func NewCall(fn, arg Expr) *Call {
	return &Call{Func: fn, Arg: arg}
}

func NewIfElse(cond, then, els Expr) *IfElse {
	return &IfElse{Cond: cond, Then: then, Else: els}
}

func NewLet(key string, value, body Expr) *Let {
	return &Let{Key: key, Value: value, Body: body}
}

// Calls applies fn to args from left to right: Calls(f, a, b) is (f a) b
func Calls(fn Expr, args ...Expr) Expr {
	acc := fn
	for _, arg := range args {
		acc = NewCall(acc, arg)
	}
	return acc
}

// Defs nests single-argument definitions: Defs(body, "x", "y") is x: y: body
func Defs(body Expr, args ...string) Expr {
	acc := body
	for i := len(args) - 1; i >= 0; i-- {
		acc = NewDef(args[i], acc)
	}
	return acc
}
