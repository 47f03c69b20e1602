package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextFormatterLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(DebugLevel),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)
	logger.Info("flushed", Str("base", "log"), Int("bytes", 42))

	got := buf.String()
	if !strings.Contains(got, "INFO") || !strings.Contains(got, "flushed") {
		t.Fatalf("unexpected line: %q", got)
	}
	if !strings.Contains(got, "base=log") || !strings.Contains(got, "bytes=42") {
		t.Fatalf("fields missing: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("expected newline-terminated line: %q", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(WarnLevel),
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)
	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("level filtering failed: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("warn entry missing: %q", buf.String())
	}
}

func TestWithAttachesBaseFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithFormatter(&TextFormatter{DisableTimestamp: true}),
		WithOutput(NewWriterOutput(&buf)),
	)
	child := logger.With(Component("logbook"))
	child.Info("rotated")
	if !strings.Contains(buf.String(), "component=logbook") {
		t.Fatalf("expected component field: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithFormatter(&JSONFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	)
	logger.Info("hello", Str("k", "v"))
	got := buf.String()
	if !strings.Contains(got, `"msg":"hello"`) || !strings.Contains(got, `"k":"v"`) {
		t.Fatalf("unexpected json: %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("warn"); err != nil || lvl != WarnLevel {
		t.Fatalf("parse warn: %v %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestApplyConfig(t *testing.T) {
	logger, err := ApplyConfig(&Config{Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if logger.GetLevel() != DebugLevel {
		t.Fatalf("level not applied")
	}
	if _, err := ApplyConfig(&Config{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
