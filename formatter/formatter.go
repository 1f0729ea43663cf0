package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/apathetic-tools/alog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// EnableColor applies the per-level ANSI color from the tag style
	// table. Handlers decide this per destination; the formatter only
	// obeys.
	EnableColor bool
	// Timestamps prefixes each line with the entry time. Off by
	// default to match the plain message format.
	Timestamps bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
	// Levels resolves level names; nil falls back to the process
	// default registry.
	Levels *core.LevelRegistry
}

func (c Config) levels() *core.LevelRegistry {
	if c.Levels != nil {
		return c.Levels
	}
	return core.DefaultLevels()
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
