package logbook

import (
	"strings"
	"time"

	"github.com/aldoforce/apex-logger-services/pkg/stamp"
)

// SeparatorLine is the fixed divider appended by AppendSeparator, used purely
// for readability of the persisted body.
const SeparatorLine = "--------------------------------------------------"

// SectionBreak is the fixed blank block appended by AppendSection.
const SectionBreak = "\n"

// Message is one buffered entry: its capture time and the caller's text.
type Message struct {
	At   time.Time
	Text string
}

// Line renders the entry as it will appear in the record body.
func (m Message) Line() string {
	return stamp.FormatLocal(m.At) + " | " + m.Text
}

// ErrorContext carries the pieces of a caught error that AppendError records.
// Callers populate it from whatever error value they hold; the buffer stays
// error-type-agnostic.
type ErrorContext struct {
	// Source labels where the error was caught.
	Source string
	// Message is the error text.
	Message string
	// Location is the originating line or position, when known.
	Location string
	// Trace is the stack or trace text, when known.
	Trace string
}

// Buffer accumulates entries for the current flush cycle, oldest first. It is
// mutated only by the Append methods and emptied by Clear; Drain leaves the
// contents in place.
type Buffer struct {
	now   func() time.Time
	lines []string
}

// NewBuffer creates an empty buffer using the wall clock.
func NewBuffer() *Buffer {
	return &Buffer{now: time.Now}
}

// NewBufferWithClock creates an empty buffer with an injected clock.
func NewBufferWithClock(now func() time.Time) *Buffer {
	return &Buffer{now: now}
}

// Append captures the current timestamp and adds "<timestamp> | <text>".
// Text content and length are unconstrained here; the record size cap is
// enforced at flush time by the rotation policy.
func (b *Buffer) Append(text string) {
	m := Message{At: b.now(), Text: text}
	b.lines = append(b.lines, m.Line())
}

// AppendError adds five contiguous entries in fixed order: the source label,
// the error message, the originating location, the trace text, and a
// separator. Unknown location or trace still occupy their entry so the block
// shape is stable.
func (b *Buffer) AppendError(ec ErrorContext) {
	b.Append(ec.Source)
	b.Append(ec.Message)
	b.Append(ec.Location)
	b.Append(ec.Trace)
	b.AppendSeparator()
}

// AppendSeparator adds the fixed divider line.
func (b *Buffer) AppendSeparator() {
	b.lines = append(b.lines, SeparatorLine)
}

// AppendSection adds the fixed blank block.
func (b *Buffer) AppendSection() {
	b.lines = append(b.lines, SectionBreak)
}

// Drain returns all entries in insertion order, each terminated by a line
// separator, without clearing the buffer. Clearing is owned by the flush.
func (b *Buffer) Drain() string {
	if len(b.lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clear empties the buffer. Idempotent.
func (b *Buffer) Clear() {
	b.lines = b.lines[:0]
}

// Len reports the number of buffered entries.
func (b *Buffer) Len() int { return len(b.lines) }
