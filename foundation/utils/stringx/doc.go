// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the Unicode-safe string helpers used
//              by diagnostics rendering and the command line tool.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-18 v0.3.0: Reduced to the helpers the lambda tooling needs

// Package stringx provides extended string operations.
//
// All width-sensitive functions count runes, not bytes, so that source
// snippets containing non-ASCII text line up in diagnostics:
//
//	stringx.Truncate("let answer = x: x; in answer", 12, "...") // "let answe..."
//	stringx.PadLeft("7", 3, ' ')                             // "  7"
//	stringx.SplitLines("a\r\nb")                             // ["a", "b"]
package stringx
