package printer

import (
	"fmt"
	"io"
)

// Logger writes progress lines. A Logger built with verbose=false discards
// everything, so callers never need to check the flag themselves.
type Logger struct {
	out io.Writer
}

// NewLogger returns a Logger writing to w when verbose is set.
func NewLogger(w io.Writer, verbose bool) *Logger {
	if !verbose || w == nil {
		w = io.Discard
	}
	return &Logger{out: w}
}

// Enabled reports whether the logger writes anywhere.
func (l *Logger) Enabled() bool {
	return l.out != io.Discard
}

// Infof prints an informational line.
func (l *Logger) Infof(format string, args ...any) {
	_, _ = fmt.Fprintln(l.out, fmt.Sprintf(format, args...))
}

// Successf prints a line prefixed with a green check mark.
func (l *Logger) Successf(format string, args ...any) {
	_, _ = fmt.Fprintln(l.out, Success("✓")+" "+fmt.Sprintf(format, args...))
}

// Skipf prints a faint line for work that was skipped.
func (l *Logger) Skipf(format string, args ...any) {
	_, _ = fmt.Fprintln(l.out, Faint("- "+fmt.Sprintf(format, args...)))
}
