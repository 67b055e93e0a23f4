package logging

import (
	"bytes"
	"strings"
	"testing"

	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/pkg/core/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"INFO", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"fatal", mdwlog.LevelFatal},
		{"bogus", mdwlog.LevelWarn},
		{"", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFromConfig_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		expected  string
	}{
		{"no flag", 0, "warn"},
		{"one step", 1, "info"},
		{"two steps", 2, "debug"},
		{"three steps", 3, "trace"},
		{"clamped", 9, "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := FromConfig("lambda", config.Default(), tt.verbosity)
			if lc.Level != tt.expected {
				t.Errorf("Level = %q, want %q", lc.Level, tt.expected)
			}
		})
	}
}

func TestFromConfig_NoColor(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Color = "never"

	lc := FromConfig("lambda", cfg, 0)
	if !lc.NoColor {
		t.Error("NoColor should follow output.color = never")
	}
	if lc.Format != "console" {
		t.Errorf("Format = %q", lc.Format)
	}

	if lc := FromConfig("lambda", nil, 0); lc.Level != "warn" {
		t.Errorf("nil config Level = %q", lc.Level)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:    "lambda",
		Level:   "info",
		Format:  "console",
		Output:  &buf,
		NoColor: true,
	})

	logger.Debug("hidden")
	logger.Info("parsed", ToFields("file", "a.lc", "nodes", 4))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line not filtered:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected colour escape: %q", out)
	}
	for _, want := range []string{"[INF]", "{lambda}", "parsed", "file=a.lc", "nodes=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestNewLogger_UnknownFormatFallsBackToConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Format: "xml", Output: &buf})
	logger.Warn("careful")

	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("expected console output, got %q", buf.String())
	}
}

func TestToFields(t *testing.T) {
	if ToFields() != nil {
		t.Error("ToFields() should be nil")
	}

	fields := ToFields("a", 1, 2, "skipped", "b", true, "dangling")
	if len(fields) != 2 || fields["a"] != 1 || fields["b"] != true {
		t.Errorf("ToFields() = %v", fields)
	}
}
