// File: encode.go
// Title: Lambda CST Encoding
// Description: Converts a CST into generic maps and encodes it as JSON or
//              YAML for consumption by other tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cst

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encoding selects the output of Encode
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// ToMap converts e into nested maps. Every node has a "kind" and a "span";
// the remaining keys mirror the node fields in snake case.
func ToMap(e Expr) map[string]interface{} {
	m := map[string]interface{}{
		"kind": e.Form().String(),
		"span": map[string]interface{}{
			"start": e.Span().Start,
			"end":   e.Span().End,
		},
	}

	switch n := e.(type) {
	case *Ident:
		m["name"] = n.Name
	case *Bool:
		m["value"] = n.Value
	case *Def:
		m["arg"] = n.Arg
		m["body"] = ToMap(n.Body)
	case *Call:
		m["func"] = ToMap(n.Func)
		m["arg"] = ToMap(n.Arg)
	case *IfElse:
		m["cond"] = ToMap(n.Cond)
		m["then"] = ToMap(n.Then)
		m["else"] = ToMap(n.Else)
	case *Let:
		m["key"] = n.Key
		m["value"] = ToMap(n.Value)
		m["body"] = ToMap(n.Body)
	}

	return m
}

// Encode writes e to w in the given encoding
func Encode(w io.Writer, e Expr, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ToMap(e))
	case EncodingYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(ToMap(e)); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported encoding %q", enc)
	}
}
