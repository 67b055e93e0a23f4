// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to
//              choose the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for lexer/parser codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input, e.g. a syntax error
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a failure of the tool itself, e.g. unreadable files
	SeverityHigh

	// SeverityCritical indicates an internal invariant was violated
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIO, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeLexical, CodeSyntax, CodeUnexpectedToken, CodeUnclosedParen,
		CodeUnterminatedLet, CodeUnterminatedIf, CodeUnexpectedEOF,
		CodeNestingTooDeep, CodeInputTooLarge,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
