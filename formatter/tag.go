package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/apathetic-tools/alog/core"
)

// ANSI color codes used by the tag style table.
const (
	ansiReset  = "\033[0m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[93m"
	ansiRed    = "\033[91m"
	ansiGreen  = "\033[92m"
	ansiGray   = "\033[90m"
)

// tagStyle is one row of the static per-level style table.
type tagStyle struct {
	color string
	tag   string
}

// tagStyles maps level names to their prefix style. Levels without an
// entry render the bare message, matching the legacy display
// conventions: routine output (DETAIL, INFO, BRIEF) carries no tag.
var tagStyles = map[string]tagStyle{
	"TEST":     {ansiGray, "[TEST]"},
	"TRACE":    {ansiGray, "[TRACE]"},
	"DEBUG":    {ansiCyan, "[DEBUG]"},
	"WARNING":  {"", "⚠️ "},
	"ERROR":    {"", "❌ "},
	"CRITICAL": {"", "💥 "},
}

// TagFormatter renders entries as "[TAG] message", applying the
// per-level color/tag style from the static table. Formatting is
// single-pass into a pooled buffer.
type TagFormatter struct {
	Config
}

// NewTagFormatter creates a new tag formatter
func NewTagFormatter(cfg Config) *TagFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TagFormatter{Config: cfg}
}

// Format formats an entry as a tagged text line
func (f *TagFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TagFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TagFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	if f.Timestamps {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if style, ok := tagStyles[f.levels().Name(entry.Level)]; ok && style.tag != "" {
		if f.EnableColor && style.color != "" {
			buf.WriteString(style.color)
			buf.WriteString(style.tag)
			buf.WriteString(ansiReset)
		} else {
			buf.WriteString(style.tag)
		}
		buf.WriteByte(' ')
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}

// Colorize wraps text in the given ANSI color code when enabled.
// Exposed for callers that build their own colored fragments with the
// same table the formatter uses.
func Colorize(text, color string, enable bool) string {
	if !enable || color == "" {
		return text
	}
	return color + text + ansiReset
}

// Colors used by Colorize callers.
const (
	ColorReset  = ansiReset
	ColorCyan   = ansiCyan
	ColorYellow = ansiYellow
	ColorRed    = ansiRed
	ColorGreen  = ansiGreen
	ColorGray   = ansiGray
)
