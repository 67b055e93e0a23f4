// File: arbitrary.go
// Title: Random CST Generator
// Description: Generates random well-formed trees for property tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cst

import (
	"math/rand"
)

var arbitraryNames = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}

// Arbitrary returns a random tree of at most depth levels. Names are drawn
// from a small pool so that generated trees reuse identifiers.
func Arbitrary(r *rand.Rand, depth int) Expr {
	name := func() string {
		return arbitraryNames[r.Intn(len(arbitraryNames))]
	}

	if depth <= 1 {
		if r.Intn(2) == 0 {
			return NewBool(r.Intn(2) == 0)
		}
		return NewIdent(name())
	}

	sub := func() Expr {
		return Arbitrary(r, r.Intn(depth-1)+1)
	}

	switch r.Intn(6) {
	case 0:
		return NewBool(r.Intn(2) == 0)
	case 1:
		return NewIdent(name())
	case 2:
		return NewDef(name(), sub())
	case 3:
		return NewCall(sub(), sub())
	case 4:
		return NewIfElse(sub(), sub(), sub())
	default:
		return NewLet(name(), sub(), sub())
	}
}
