// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their names and the verbosity arithmetic used by
//              the command line -v flag.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-18 v0.2.0: Name table, text marshalling and Lower for verbosity flags

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, e.g. every token the parser consumes
	LevelTrace Level = iota

	// LevelDebug covers per-file parse results and timings
	LevelDebug

	// LevelInfo covers batch progress
	LevelInfo

	// LevelWarn is the command line default
	LevelWarn

	// LevelError represents failures the user must act on
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal
)

// levelNames holds the long name, the short tag and accepted aliases
var levelNames = [...]struct {
	long, short string
	aliases     []string
}{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", nil},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter tag used by the text formatters
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// Lower returns the level steps positions more verbose, stopping at trace
func (l Level) Lower(steps int) Level {
	if steps <= 0 {
		return l
	}
	if int(l-LevelTrace) <= steps {
		return LevelTrace
	}
	return l - Level(steps)
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, its short tag or an alias
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, names := range levelNames {
		if s == names.long || s == strings.ToLower(names.short) {
			return Level(l), nil
		}
		for _, alias := range names.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError represents an invalid level or format name
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level of loggers created by New
func DefaultLevel() Level {
	return LevelInfo
}
