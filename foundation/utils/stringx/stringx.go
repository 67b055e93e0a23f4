// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string operations used when rendering source
//              snippets: blank checks, rune-aware truncation and padding,
//              line splitting and column expansion.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.3.0: Added LineAt and ExpandTabs, dropped unused helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxLen runes, ending in ellipsis when cut
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadLeft pads s on the left with pad until it is width runes wide
func PadLeft(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(string(pad), width-n) + s
}

// PadRight pads s on the right with pad until it is width runes wide
func PadRight(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(string(pad), width-n)
}

// SplitLines splits s on \n, \r\n and \r
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// LineAt returns the 1-based line of s, or "" when out of range
func LineAt(s string, line int) string {
	lines := SplitLines(s)
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// ExpandTabs replaces every tab with width spaces
func ExpandTabs(s string, width int) string {
	if width <= 0 {
		width = 1
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}
