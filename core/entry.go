package core

import (
	"sync"
	"time"
)

// Entry represents a single log record on its way to a handler.
type Entry struct {
	Time    time.Time
	Level   Level
	Logger  string
	Message string
	Fields  []Field
}

// entryPool reduces allocations on the emission path.
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetEntry retrieves a cleared Entry from the pool.
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = Now()
	e.Fields = e.Fields[:0]
	return e
}

// PutEntry returns an Entry to the pool. Callers must not retain the
// entry after putting it back.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Logger = ""
	e.Message = ""
	entryPool.Put(e)
}
