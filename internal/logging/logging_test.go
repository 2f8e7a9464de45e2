package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})

	l.Info("hidden")
	l.Warn("shown %d", 42)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 42") {
		t.Errorf("expected warn line, got %q", out)
	}
}

func TestLoggerFieldsSortedAndShared(t *testing.T) {
	var buf bytes.Buffer
	root := New(Config{Level: LevelInfo, Output: &buf, Prefix: "test"})
	child := root.WithComponent("gutter").WithField("line", 3)

	// Level changes on the root apply to derived loggers.
	root.SetLevel(LevelError)
	child.Warn("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	root.SetLevel(LevelDebug)
	child.Debug("kept")
	out := buf.String()
	if !strings.Contains(out, "test: kept {component=gutter, line=3}") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Error("nothing")
	var nilLogger *Logger
	nilLogger.Error("also nothing")
}
