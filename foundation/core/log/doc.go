// Package log provides structured logging for the lambda toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Implements a small structured logger with levels, persistent
//              context fields, JSON/text/console/logfmt formatters and
//              timers. Parse engines and the CLI log through it; the parser
//              itself only logs when a logger is handed to it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Synchronous only, colour via fatih/color, sorted text fields
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithField("component", "lambda-engine")
//
//	logger.Info("parsed file", log.Fields{"file": "main.lc", "tokens": 42})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.Stop()
package log
