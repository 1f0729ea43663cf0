// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// TagFormatter is the human-facing format: a static per-level style
// table supplies a "[TAG]" prefix and an ANSI color for diagnostic
// levels, while routine output (DETAIL, INFO, BRIEF) stays a bare
// message line. Colorization is an input decided by the handler per
// destination; the formatter only obeys the EnableColor flag.
// JSONFormatter emits one object per line for machine consumers.
//
// Both formatters format in a single pass into a pooled bytes.Buffer
// and rely on Go's Append-style functions (time.AppendFormat,
// strconv.AppendInt) to avoid per-call allocations. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package formatter
