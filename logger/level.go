package logger

import (
	"github.com/apathetic-tools/alog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	Inherit       = core.Inherit
	TestLevel     = core.TestLevel
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	DetailLevel   = core.DetailLevel
	InfoLevel     = core.InfoLevel
	BriefLevel    = core.BriefLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	SilentLevel   = core.SilentLevel
)

// ParseLevel resolves a level name or decimal string against the
// process level table. Unknown names error rather than defaulting,
// so a typo in configuration is caught at setup.
func ParseLevel(s string) (Level, error) {
	return core.DefaultLevels().Number(s)
}
