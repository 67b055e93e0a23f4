// File: visitor.go
// Title: Lambda CST Visitor and Traversal
// Description: Visitor pattern for processing CST nodes plus Walk-based
//              pre-order traversal helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cst

// Visitor has one method per node type
type Visitor interface {
	VisitIdent(e *Ident) interface{}
	VisitBool(e *Bool) interface{}
	VisitDef(e *Def) interface{}
	VisitCall(e *Call) interface{}
	VisitIfElse(e *IfElse) interface{}
	VisitLet(e *Let) interface{}
}

// BaseVisitor returns nil for every node.
// Embed it in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (BaseVisitor) VisitIdent(*Ident) interface{}   { return nil }
func (BaseVisitor) VisitBool(*Bool) interface{}     { return nil }
func (BaseVisitor) VisitDef(*Def) interface{}       { return nil }
func (BaseVisitor) VisitCall(*Call) interface{}     { return nil }
func (BaseVisitor) VisitIfElse(*IfElse) interface{} { return nil }
func (BaseVisitor) VisitLet(*Let) interface{}       { return nil }

// Walk visits e and its descendants in pre-order. Returning false from fn
// skips the children of the current node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range Children(e) {
		Walk(child, fn)
	}
}

// Size returns the number of nodes in the tree
func Size(e Expr) int {
	n := 0
	Walk(e, func(Expr) bool {
		n++
		return true
	})
	return n
}

// Depth returns the height of the tree; a single leaf has depth 1
func Depth(e Expr) int {
	if e == nil {
		return 0
	}
	max := 0
	for _, child := range Children(e) {
		if d := Depth(child); d > max {
			max = d
		}
	}
	return max + 1
}

// Identifiers returns the names referenced by Ident nodes, in source order
func Identifiers(e Expr) []string {
	var names []string
	Walk(e, func(n Expr) bool {
		if id, ok := n.(*Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})
	return names
}

// NodeAt returns the innermost node whose span contains offset, or nil.
func NodeAt(root Expr, offset int) Expr {
	var found Expr
	Walk(root, func(n Expr) bool {
		if !n.Span().Contains(offset) {
			return false
		}
		found = n
		return true
	})
	return found
}

// Equal reports whether a and b have the same structure. Spans are ignored.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *Ident:
		y, ok := b.(*Ident)
		return ok && x.Name == y.Name
	case *Bool:
		y, ok := b.(*Bool)
		return ok && x.Value == y.Value
	case *Def:
		y, ok := b.(*Def)
		return ok && x.Arg == y.Arg && Equal(x.Body, y.Body)
	case *Call:
		y, ok := b.(*Call)
		return ok && Equal(x.Func, y.Func) && Equal(x.Arg, y.Arg)
	case *IfElse:
		y, ok := b.(*IfElse)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Then, y.Then) && Equal(x.Else, y.Else)
	case *Let:
		y, ok := b.(*Let)
		return ok && x.Key == y.Key && Equal(x.Value, y.Value) && Equal(x.Body, y.Body)
	default:
		return false
	}
}
