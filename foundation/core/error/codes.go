// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the lambda toolchain for
//              consistent classification in logs, CLI exit handling and
//              diagnostics rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced platform codes with lexer/parser codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Source processing
	CodeLexical         Code = "LAMBDA_LEXICAL"
	CodeSyntax          Code = "LAMBDA_SYNTAX"
	CodeUnexpectedToken Code = "LAMBDA_UNEXPECTED_TOKEN"
	CodeUnclosedParen   Code = "LAMBDA_UNCLOSED_PAREN"
	CodeUnterminatedLet Code = "LAMBDA_UNTERMINATED_LET"
	CodeUnterminatedIf  Code = "LAMBDA_UNTERMINATED_IF"
	CodeUnexpectedEOF   Code = "LAMBDA_UNEXPECTED_EOF"
	CodeNestingTooDeep  Code = "LAMBDA_NESTING_TOO_DEEP"
	CodeInputTooLarge   Code = "LAMBDA_INPUT_TOO_LARGE"

	// Files and configuration
	CodeIO            Code = "IO_ERROR"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled,
		CodeLexical, CodeSyntax, CodeUnexpectedToken, CodeUnclosedParen,
		CodeUnterminatedLet, CodeUnterminatedIf, CodeUnexpectedEOF,
		CodeNestingTooDeep, CodeInputTooLarge,
		CodeIO, CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical:
		return "lexical"
	case CodeSyntax, CodeUnexpectedToken, CodeUnclosedParen, CodeUnterminatedLet,
		CodeUnterminatedIf, CodeUnexpectedEOF, CodeNestingTooDeep, CodeInputTooLarge:
		return "syntax"
	case CodeIO, CodeNotFound:
		return "io"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps a code to the process exit status used by the CLI
func (c Code) ExitCode() int {
	switch c.Category() {
	case "lexical", "syntax":
		return 1
	case "io":
		return 3
	case "configuration", "validation":
		return 4
	default:
		return 2
	}
}
