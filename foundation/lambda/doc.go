// File: doc.go
// Title: Package Documentation for lambda
// Description: Package lambda is the entry point to the lambda language
//              front end: source text in, concrete syntax tree out.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package lambda ties the lexer and parser together.
//
//	engine := lambda.New(lambda.Options{})
//	expr, err := engine.ParseSource("main.lc", "let id = x: x; in id true")
//
// Errors returned by the engine are *mdwerror.Error values with code
// LAMBDA_LEXICAL or LAMBDA_SYNTAX; the underlying *lexer.Error or
// *parser.ParseError stays reachable through errors.As.
//
// ParseFiles parses many files concurrently with a bounded worker pool and
// returns one Result per path in input order.
package lambda
