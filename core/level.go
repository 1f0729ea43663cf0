package core

// Level represents a logging severity. Lower values are more verbose;
// a record is emitted when its level is at or above the logger's
// effective level. The zero value is reserved as the inherit sentinel
// and is never a valid severity for a record.
type Level int32

const (
	// Inherit is the reserved zero value meaning "no explicit level;
	// defer to the nearest ancestor with one". It is not a severity.
	Inherit Level = 0

	// TestLevel is the most verbose level, used for test diagnostics.
	TestLevel Level = 2
	// TraceLevel is more verbose than DEBUG.
	TraceLevel Level = 5
	// DebugLevel for detailed debugging information.
	DebugLevel Level = 10
	// DetailLevel is more detailed than INFO.
	DetailLevel Level = 15
	// InfoLevel for general informational messages.
	InfoLevel Level = 20
	// BriefLevel is less detailed than INFO.
	BriefLevel Level = 25
	// WarnLevel for warning messages.
	WarnLevel Level = 30
	// ErrorLevel for error messages.
	ErrorLevel Level = 40
	// CriticalLevel for unrecoverable failures.
	CriticalLevel Level = 50
	// SilentLevel sits above every other level and disables all output.
	SilentLevel Level = 51
)

// String returns the registered name of the level, or "Level N" for
// values unknown to the default registry.
func (l Level) String() string {
	return DefaultLevels().Name(l)
}

// Enabled reports whether a record at level l passes a logger whose
// effective level is threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}
