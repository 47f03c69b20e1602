package log

import (
	"io"
	stdlog "log"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to a writer (stderr by default),
// serializing writes so interleaved goroutines produce whole lines.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput returns a ConsoleOutput on stderr.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{w: os.Stderr} }

// NewWriterOutput returns a ConsoleOutput on an arbitrary writer.
func NewWriterOutput(w io.Writer) *ConsoleOutput { return &ConsoleOutput{w: w} }

// Write implements Output.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.w.Write(formatted)
	return err
}

// Close implements Output. The underlying writer is not owned.
func (o *ConsoleOutput) Close() error { return nil }

// RedirectStdLog routes the standard library logger (used by Pebble and other
// dependencies) through the provided Logger at info level.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdLogBridge{logger})
}

type stdLogBridge struct{ logger Logger }

func (b stdLogBridge) Write(p []byte) (int, error) {
	msg := string(p)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	b.logger.Info(msg, Component("stdlog"))
	return len(p), nil
}
