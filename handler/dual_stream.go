package handler

import (
	"io"
	"os"
	"sync"

	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/formatter"
)

// DualStreamHandler routes records below a severity threshold to
// stdout and everything at or above it to stderr, so redirecting
// stdout alone never swallows errors. It does no buffering beyond
// what the underlying streams provide.
type DualStreamHandler struct {
	stdout          io.Writer
	stderr          io.Writer
	threshold       core.Level
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

// DualStreamConfig holds configuration for a DualStreamHandler.
type DualStreamConfig struct {
	// Stdout receives records below Threshold (default: os.Stdout).
	Stdout io.Writer
	// Stderr receives records at or above Threshold (default: os.Stderr).
	Stderr io.Writer
	// Threshold splits the two streams (default: WARNING).
	Threshold core.Level
	// Formatter to use. Defaults to a TagFormatter whose color flag is
	// resolved via DetermineColorEnabled against the stdout stream.
	Formatter formatter.Formatter
}

// NewDualStreamHandler creates a new dual-stream handler.
func NewDualStreamHandler(cfg DualStreamConfig) *DualStreamHandler {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Threshold == core.Inherit {
		cfg.Threshold = core.WarnLevel
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTagFormatter(formatter.Config{
			EnableColor: DetermineColorEnabled(cfg.Stdout),
		})
	}

	h := &DualStreamHandler{
		stdout:    cfg.Stdout,
		stderr:    cfg.Stderr,
		threshold: cfg.Threshold,
		formatter: cfg.Formatter,
	}

	// Cache WriterFormatter for the no-copy write path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats the entry and writes it to the stream its level
// selects. A write may block on a full OS pipe; that is an external
// resource limit and is not mitigated here.
func (h *DualStreamHandler) Handle(entry *core.Entry) error {
	w := h.stdout
	if entry.Level >= h.threshold {
		w = h.stderr
	}

	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, w)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := w.Write(data)
	h.mu.Unlock()
	return writeErr
}

// MatchesStreams reports whether the handler writes to exactly the
// given streams. Loggers rebuild their handler when this returns false
// against the current os.Stdout/os.Stderr, instead of writing to a
// stale stream reference.
func (h *DualStreamHandler) MatchesStreams(stdout, stderr io.Writer) bool {
	return h.stdout == stdout && h.stderr == stderr
}

// Streams returns the handler's stdout and stderr streams.
func (h *DualStreamHandler) Streams() (stdout, stderr io.Writer) {
	return h.stdout, h.stderr
}

// Threshold returns the level at and above which records go to stderr.
func (h *DualStreamHandler) Threshold() core.Level {
	return h.threshold
}

// Close is a no-op; the handler does not own its streams.
func (h *DualStreamHandler) Close() error {
	return nil
}
