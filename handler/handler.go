package handler

import (
	"io"

	"github.com/apathetic-tools/alog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StreamHandler is implemented by handlers bound to specific output
// streams. Loggers use it to detect a handler whose streams have been
// swapped out from under it (for example by output capture) and to
// avoid attaching two handlers for the same destination.
type StreamHandler interface {
	Handler

	// MatchesStreams reports whether the handler writes to exactly the
	// given stdout and stderr streams. Comparison is by identity, not
	// by value.
	MatchesStreams(stdout, stderr io.Writer) bool

	// Streams returns the handler's current stdout and stderr streams.
	Streams() (stdout, stderr io.Writer)
}
