// Package error provides structured error handling for the lambda toolchain.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements an error type carrying a code, a severity, free-form
//              details and the operation that failed. Lexer and parser errors
//              are wrapped into it by the engine so that logging and the CLI
//              can treat every failure uniformly while the original error
//              stays reachable through errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Codes reduced to the lambda domain, errors.As based lookups
//
// Usage:
//
//	err := error.New("unexpected ';'").
//		WithCode(error.CodeSyntax).
//		WithDetail("offset", 8).
//		WithOperation("parser.Parse")
//
//	wrapped := error.Wrap(err, "parse main.lc").
//		WithDetail("file", "main.lc")
//
//	if error.HasCode(wrapped, error.CodeSyntax) {
//		// report a diagnostic
//	}
package error
