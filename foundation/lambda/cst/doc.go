// File: doc.go
// Title: Package Documentation for cst
// Description: Package cst defines the concrete syntax tree produced by the
//              lambda parser together with traversal, printing, encoding and
//              query helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package cst defines the concrete syntax tree of the lambda language.
//
// A tree is made of six node types, all implementing Expr:
//
//	Ident   x
//	Bool    true | false
//	Def     x: body
//	Call    f x
//	IfElse  if c then t else e
//	Let     let k = v; in body
//
// Every node owns its children exclusively and carries the byte span of the
// tokens it was built from. Parentheses only group; they never produce a
// node, so "(a b)" and "a b" yield equal trees.
//
// The package offers several renderings of a tree:
//
//	expr.String()  Call(Ident(f), Ident(x))       structural notation
//	Print(expr)    f x                            canonical source, re-parses to an equal tree
//	SExpr(expr)    (call f x)                     compact S-expression
//	Dump(expr)     indented tree with spans
//	Encode(w, expr, FormatJSON|FormatYAML)
package cst
