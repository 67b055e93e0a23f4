// ============================================================================
// lambda - Parser toolkit for a minimal lambda language
// ============================================================================
//
// Package:     version
// Description: Central version management for the tool and its grammar
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Tool version
	Tool = "0.3.0"

	// Grammar version, bumped when the accepted language changes
	Grammar = "1.0.0"

	// Tree encoding version used by the json and yaml output formats
	Encoding = "1.0.0"
)

// Commit is set at build time via -ldflags "-X .../version.Commit=<sha>"
var Commit = "unknown"

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "grammar":
		return Grammar
	case "encoding":
		return Encoding
	default:
		return Tool
	}
}

// String returns a one-line version banner
func String() string {
	return fmt.Sprintf("lambda %s (grammar %s, commit %s, %s %s/%s)",
		Tool, Grammar, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
