// Package logging configures the leveled logger used throughout the
// scanner: info-level progress to stderr, debug-level internals gated
// behind -v/--debug.
package logging

import (
	"io"
	"os"

	"github.com/opencoff/go-logger"
)

// New builds a logger.Logger writing to w (stderr in normal operation) at
// LOG_DEBUG when debug is set, LOG_INFO otherwise. prefix identifies the
// binary in each log line, so multiple processes logging to the same
// stream stay distinguishable.
func New(w io.Writer, debug bool, prefix string) (logger.Logger, error) {
	level := logger.LOG_INFO
	if debug {
		level = logger.LOG_DEBUG
	}
	return logger.NewLogger(w, level, prefix, logger.Ldate|logger.Ltime|logger.Lmicroseconds)
}

// NewStderr is the convenience constructor cmd/pfind uses.
func NewStderr(debug bool, prefix string) (logger.Logger, error) {
	return New(os.Stderr, debug, prefix)
}
