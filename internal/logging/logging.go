// Package logging wraps logrus for pwnableharness's own diagnostics.
//
// The wire-format lines the harness must emit (the startup banner and the
// per-connection received-from line) are not log records, they're a fixed
// protocol described in the harness's operator documentation, so they go
// out through Protocolf rather than through the level-based helpers.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is a mutex-guarded logrus.Logger whose destination can be moved
// after construction. It starts out pointed at the process's real stderr
// and is later redirected to the saved stderr handle once the stdio
// relocator has produced one, so that a component's own mistakes (a
// listener setup failure before the relocation has happened, say) are
// never silently lost.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
	l   *logrus.Logger
}

// New returns a Logger writing to os.Stderr.
func New() *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetOutput(os.Stderr)

	return &Logger{out: os.Stderr, l: l}
}

// Redirect moves both the structured and the protocol output to w.
func (lg *Logger) Redirect(w io.Writer) {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	lg.out = w
	lg.l.SetOutput(w)
}

// Writer returns the logger's current destination.
func (lg *Logger) Writer() io.Writer {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.out
}

func (lg *Logger) entry(fields logrus.Fields) *logrus.Entry {
	lg.mu.Lock()
	defer lg.mu.Unlock()

	return lg.l.WithFields(fields)
}

// Debug logs a debug-level structured message.
func (lg *Logger) Debug(msg string, fields logrus.Fields) {
	lg.entry(fields).Debug(msg)
}

// Info logs an info-level structured message.
func (lg *Logger) Info(msg string, fields logrus.Fields) {
	lg.entry(fields).Info(msg)
}

// Warn logs a warn-level structured message.
func (lg *Logger) Warn(msg string, fields logrus.Fields) {
	lg.entry(fields).Warn(msg)
}

// Error logs an error-level structured message.
func (lg *Logger) Error(msg string, fields logrus.Fields) {
	lg.entry(fields).Error(msg)
}

// Protocolf writes a raw, unformatted line straight to the logger's current
// destination, bypassing logrus's level and field rendering entirely.
func (lg *Logger) Protocolf(format string, args ...any) {
	fmt.Fprintf(lg.Writer(), format, args...)
}
