package logbook

import (
	"strings"
	"testing"
	"time"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	b.Append("first")
	b.Append("second")
	b.Append("third")

	lines := strings.Split(strings.TrimRight(b.Drain(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %q", len(lines), lines)
	}
	for i, want := range []string{"first", "second", "third"} {
		if !strings.HasSuffix(lines[i], " | "+want) {
			t.Fatalf("line %d: got %q want suffix %q", i, lines[i], want)
		}
	}
}

func TestAppendFormatsTimestampPrefix(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	b.Append("hello")
	got := b.Drain()
	if !strings.Contains(got, " | hello\n") {
		t.Fatalf("missing separator or terminator: %q", got)
	}
	if !strings.HasPrefix(got, "2025-06-01 ") {
		t.Fatalf("missing local timestamp prefix: %q", got)
	}
}

func TestDrainDoesNotClear(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	b.Append("a")
	first := b.Drain()
	second := b.Drain()
	if first != second {
		t.Fatalf("drain mutated buffer: %q vs %q", first, second)
	}
	if b.Len() != 1 {
		t.Fatalf("want 1 entry after drain, got %d", b.Len())
	}
}

func TestClearIdempotent(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	b.Append("a")
	b.Clear()
	b.Clear()
	if b.Len() != 0 || b.Drain() != "" {
		t.Fatalf("buffer not empty after clear")
	}
}

func TestAppendErrorBlockShape(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	b.Append("before")
	b.AppendError(ErrorContext{
		Source:   "worker",
		Message:  "boom",
		Location: "line 42",
		Trace:    "stack",
	})

	lines := strings.Split(strings.TrimRight(b.Drain(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 lines, got %d", len(lines))
	}
	block := lines[1:]
	for i, want := range []string{"worker", "boom", "line 42", "stack"} {
		if !strings.HasSuffix(block[i], " | "+want) {
			t.Fatalf("block line %d: got %q want suffix %q", i, block[i], want)
		}
	}
	if block[4] != SeparatorLine {
		t.Fatalf("block must end with separator, got %q", block[4])
	}
}

func TestAppendErrorMissingFieldsKeepShape(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	b.AppendError(ErrorContext{Source: "worker", Message: "boom"})
	lines := strings.Split(strings.TrimRight(b.Drain(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("want 5 lines, got %d", len(lines))
	}
}

func TestAppendSeparatorAndSection(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	b.AppendSeparator()
	b.AppendSection()
	got := b.Drain()
	if !strings.Contains(got, SeparatorLine+"\n") {
		t.Fatalf("separator missing: %q", got)
	}
	if !strings.Contains(got, SectionBreak+"\n") {
		t.Fatalf("section break missing: %q", got)
	}
}

func TestDrainEmptyBuffer(t *testing.T) {
	b := NewBufferWithClock(fixedClock())
	if got := b.Drain(); got != "" {
		t.Fatalf("empty drain: got %q", got)
	}
}
