// File: print.go
// Title: Lambda CST Printers
// Description: Canonical source printer, S-expression printer and an
//              indented debug dump of a CST.
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
	"strings"
)

// Printer renders a tree as lambda source. The output always parses back to
// a tree Equal to the input.
type Printer struct {
	// Multiline puts every let of a let chain on its own line:
	//
	//	let x = true;
	//	in let y = x;
	//	in y
	Multiline bool
}

// Print renders e as canonical single-line source
func Print(e Expr) string {
	return (&Printer{}).Print(e)
}

// Print renders e as source
func (p *Printer) Print(e Expr) string {
	var sb strings.Builder
	p.write(&sb, e, true)
	return sb.String()
}

// write renders e. chain is true when e sits at the top of the tree or in
// the body of a let, where a multiline let may break the line.
func (p *Printer) write(sb *strings.Builder, e Expr, chain bool) {
	switch n := e.(type) {
	case *Ident:
		sb.WriteString(n.Name)
	case *Bool:
		fmt.Fprintf(sb, "%t", n.Value)
	case *Def:
		sb.WriteString(n.Arg)
		sb.WriteString(": ")
		p.write(sb, n.Body, false)
	case *Call:
		// Def, IfElse and Let extend as far right as possible, so in
		// function position they would swallow the argument.
		p.writeOperand(sb, n.Func, needsParensAsFunc(n.Func))
		sb.WriteByte(' ')
		// Calls are left-associative: a call argument needs parentheses.
		p.writeOperand(sb, n.Arg, needsParensAsArg(n.Arg))
	case *IfElse:
		sb.WriteString("if ")
		p.write(sb, n.Cond, false)
		sb.WriteString(" then ")
		p.write(sb, n.Then, false)
		sb.WriteString(" else ")
		p.write(sb, n.Else, false)
	case *Let:
		sb.WriteString("let ")
		sb.WriteString(n.Key)
		sb.WriteString(" = ")
		p.write(sb, n.Value, false)
		if p.Multiline && chain {
			sb.WriteString(";\nin ")
		} else {
			sb.WriteString("; in ")
		}
		p.write(sb, n.Body, chain)
	}
}

func (p *Printer) writeOperand(sb *strings.Builder, e Expr, parens bool) {
	if !parens {
		p.write(sb, e, false)
		return
	}
	sb.WriteByte('(')
	p.write(sb, e, false)
	sb.WriteByte(')')
}

func needsParensAsFunc(e Expr) bool {
	switch e.(type) {
	case *Def, *IfElse, *Let:
		return true
	}
	return false
}

func needsParensAsArg(e Expr) bool {
	switch e.(type) {
	case *Call, *Def, *IfElse, *Let:
		return true
	}
	return false
}

// SExpr renders e as a compact S-expression, e.g. (let x true (call f x))
func SExpr(e Expr) string {
	var sb strings.Builder
	writeSExpr(&sb, e)
	return sb.String()
}

func writeSExpr(sb *strings.Builder, e Expr) {
	switch n := e.(type) {
	case *Ident:
		sb.WriteString(n.Name)
	case *Bool:
		fmt.Fprintf(sb, "%t", n.Value)
	case *Def:
		fmt.Fprintf(sb, "(def %s ", n.Arg)
		writeSExpr(sb, n.Body)
		sb.WriteByte(')')
	case *Call:
		sb.WriteString("(call ")
		writeSExpr(sb, n.Func)
		sb.WriteByte(' ')
		writeSExpr(sb, n.Arg)
		sb.WriteByte(')')
	case *IfElse:
		sb.WriteString("(if ")
		writeSExpr(sb, n.Cond)
		sb.WriteByte(' ')
		writeSExpr(sb, n.Then)
		sb.WriteByte(' ')
		writeSExpr(sb, n.Else)
		sb.WriteByte(')')
	case *Let:
		fmt.Fprintf(sb, "(let %s ", n.Key)
		writeSExpr(sb, n.Value)
		sb.WriteByte(' ')
		writeSExpr(sb, n.Body)
		sb.WriteByte(')')
	}
}

// Dump renders e as an indented tree, one node per line with its span:
//
//	Let x 0..18
//	  value: Bool true 8..12
//	  body: Ident x 17..18
func Dump(e Expr, indent string) string {
	if indent == "" {
		indent = "  "
	}
	var sb strings.Builder
	dump(&sb, e, "", indent, "")
	return sb.String()
}

func dump(sb *strings.Builder, e Expr, prefix, indent, role string) {
	sb.WriteString(prefix)
	if role != "" {
		sb.WriteString(role)
		sb.WriteString(": ")
	}

	next := prefix + indent
	switch n := e.(type) {
	case *Ident:
		fmt.Fprintf(sb, "Ident %s %s\n", n.Name, n.Pos)
	case *Bool:
		fmt.Fprintf(sb, "Bool %t %s\n", n.Value, n.Pos)
	case *Def:
		fmt.Fprintf(sb, "Def %s %s\n", n.Arg, n.Pos)
		dump(sb, n.Body, next, indent, "body")
	case *Call:
		fmt.Fprintf(sb, "Call %s\n", n.Pos)
		dump(sb, n.Func, next, indent, "func")
		dump(sb, n.Arg, next, indent, "arg")
	case *IfElse:
		fmt.Fprintf(sb, "IfElse %s\n", n.Pos)
		dump(sb, n.Cond, next, indent, "cond")
		dump(sb, n.Then, next, indent, "then")
		dump(sb, n.Else, next, indent, "else")
	case *Let:
		fmt.Fprintf(sb, "Let %s %s\n", n.Key, n.Pos)
		dump(sb, n.Value, next, indent, "value")
		dump(sb, n.Body, next, indent, "body")
	}
}
