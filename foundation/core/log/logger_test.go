// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formatters,
//              structured error logging and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Rewritten for the synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
)

func newBufferLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf}), buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelInfo)

	logger.Debug("hidden")
	logger.Info("shown")
	logger.Warn("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "[INF]") || !strings.Contains(out, "shown") {
		t.Errorf("info message missing:\n%s", out)
	}
	if !strings.Contains(out, "[WRN]") {
		t.Errorf("warn message missing:\n%s", out)
	}
}

func TestLogger_WithFieldIsImmutable(t *testing.T) {
	base, buf := newBufferLogger(FormatText, LevelInfo)
	derived := base.WithField("component", "lambda-parser")

	base.Info("from base")
	derived.Info("from derived")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "component=") {
		t.Errorf("base logger picked up derived field: %s", lines[0])
	}
	if !strings.Contains(lines[1], "component=lambda-parser") {
		t.Errorf("derived logger missing field: %s", lines[1])
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)
	logger.WithName("engine").WithCorrelationID("batch-1").
		Debug("parsed", Fields{"tokens": 7, "file": "main.lc"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	want := map[string]interface{}{
		"level":          "debug",
		"message":        "parsed",
		"logger":         "engine",
		"correlation_id": "batch-1",
		"file":           "main.lc",
		"tokens":         float64(7),
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelInfo)
	logger.Info("x", Fields{"b": 2, "a": 1, "c": 3})

	if !strings.Contains(buf.String(), "[a=1 b=2 c=3]") {
		t.Errorf("fields not sorted: %s", buf.String())
	}
}

func TestLogger_Logfmt(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt, LevelInfo)
	logger.Info("parsed file", Fields{"file": "a.lc", "nodes": 3})

	out := buf.String()
	for _, want := range []string{`level=info`, `message="parsed file"`, `file="a.lc"`, `nodes=3`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %s", want, out)
		}
	}
}

func TestLogger_ConsoleWithoutColors(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := NewConsoleFormatter()
	formatter.DisableColors = true
	logger := NewWithConfig(Config{Level: LevelInfo, Output: buf}).WithFormatter(formatter)

	logger.Error("boom")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("unexpected escape sequence: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[ERR] boom") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestLogger_ConsoleColorsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatConsole, Output: buf})

	logger.Warn("careful")

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected colour escape in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "careful") {
		t.Errorf("message missing in %q", buf.String())
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "syntax error logs at info",
			err:       mdwerror.New("unexpected ';'").WithCode(mdwerror.CodeSyntax),
			wantLevel: "info",
			wantCode:  "LAMBDA_SYNTAX",
		},
		{
			name:      "io error logs at error",
			err:       mdwerror.New("no such file").WithCode(mdwerror.CodeIO),
			wantLevel: "error",
			wantCode:  "IO_ERROR",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(FormatJSON, LevelTrace)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(FormatJSON, LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestLogger_ConcurrentWritesDoNotInterleave(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.WithField("worker", i).Info("done")
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	for _, line := range lines {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(line), &data); err != nil {
			t.Errorf("corrupted line %q: %v", line, err)
		}
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{
		"trace": LevelTrace, "DEBUG": LevelDebug, " info ": LevelInfo,
		"warning": LevelWarn, "err": LevelError, "fatal": LevelFatal,
	}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}

	formats := map[string]Format{
		"json": FormatJSON, "Text": FormatText, "console": FormatConsole, "logfmt": FormatLogfmt,
	}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)

	timer := logger.StartTimer("parse").WithField("file", "main.lc")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()

	if elapsed <= 0 {
		t.Errorf("elapsed = %v", elapsed)
	}
	if timer.IsRunning() {
		t.Error("timer still running after Stop")
	}
	if again := timer.Stop(); again != 0 {
		t.Errorf("second Stop() = %v, want 0", again)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if data["message"] != "parse completed" {
		t.Errorf("message = %v", data["message"])
	}
	if data["operation"] != "parse" || data["file"] != "main.lc" {
		t.Errorf("fields missing: %v", data)
	}
	if _, ok := data["duration_ms"]; !ok {
		t.Error("duration_ms missing")
	}
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelInfo)

	logger.StartTimer("lex").StopWithError(errors.New("illegal character"))

	out := buf.String()
	if !strings.Contains(out, "[ERR] lex failed") || !strings.Contains(out, `error="illegal character"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("nop logger should have every level disabled")
	}
	logger.Error("discarded")
}

func TestLevel_Lower(t *testing.T) {
	tests := []struct {
		from  Level
		steps int
		want  Level
	}{
		{LevelWarn, 0, LevelWarn},
		{LevelWarn, 1, LevelInfo},
		{LevelWarn, 3, LevelTrace},
		{LevelWarn, 10, LevelTrace},
		{LevelError, -1, LevelError},
		{LevelTrace, 1, LevelTrace},
	}

	for _, tt := range tests {
		if got := tt.from.Lower(tt.steps); got != tt.want {
			t.Errorf("%s.Lower(%d) = %s, want %s", tt.from, tt.steps, got, tt.want)
		}
	}
}

func TestLevel_Text(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("DBG")); err != nil || l != LevelDebug {
		t.Errorf("UnmarshalText(DBG) = %v, %v", l, err)
	}
	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Error("UnmarshalText(loud) should fail")
	}

	out, _ := LevelWarn.MarshalText()
	if string(out) != "warn" {
		t.Errorf("MarshalText() = %q", out)
	}
	if Level(42).String() != "unknown" || Level(-1).ShortString() != "???" {
		t.Error("out-of-range level names")
	}
}
