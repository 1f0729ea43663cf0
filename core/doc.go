// Package core defines the shared types used across alog.
//
// It provides the Level type and the LevelRegistry that maps severity
// names to values, the Entry type that represents a single log record,
// and the Field type for key-value pairs arriving through the slog and
// zap bridges.
//
// Levels follow the stdlib-logging numbering: lower values are more
// verbose, zero is the reserved inherit sentinel, and a record passes
// a logger when its level is at or above the logger's effective level.
// The builtin table adds TEST, TRACE, DETAIL, BRIEF, and SILENT around
// the conventional DEBUG..CRITICAL tiers; custom levels register
// through LevelRegistry.Register with collision checking.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must
// return it with PutEntry once the handlers have consumed it.
//
// SafeLog is the emergency path: it bypasses every other type in this
// module and writes to the process's original stderr, and it never
// fails.
package core
