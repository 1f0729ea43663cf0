package logger

import (
	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/settings"
)

// defaultRegistry is the process-wide tree, bound to the process
// settings and level table and the live os.Stdout/os.Stderr.
var defaultRegistry = NewRegistry(RegistryConfig{})

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// GetLogger returns the logger for the given name from the process
// tree. With no name it falls back to a name registered in settings,
// then to the calling package's import path (slashes become dots), and
// errors with core.ErrMissingLoggerName when neither resolves — unless
// compatibility mode is on, in which case the root is returned.
func GetLogger(name ...string) (*Logger, error) {
	if len(name) > 0 && name[0] != "" {
		return defaultRegistry.GetLogger(name[0]), nil
	}
	return defaultRegistry.inferLogger(2)
}

// Root returns the process tree's root logger.
func Root() *Logger {
	return defaultRegistry.Root()
}

// Extend makes sure the process tree's root is a Logger, migrating a
// foreign root per the flags registered in settings.
func Extend() (*Logger, bool) {
	return defaultRegistry.Extend()
}

// RegisterLevel adds a custom severity to the process level table,
// e.g. RegisterLevel(25, "NOTICE"). Registration conflicts error.
func RegisterLevel(value core.Level, name string) error {
	return core.DefaultLevels().Register(value, name)
}

// RegisterDefaultLevel registers the level name used when neither CLI
// nor environment provide one.
func RegisterDefaultLevel(name string) {
	settings.Default().RegisterDefaultLevel(name)
}

// RegisterEnvVars registers the ordered environment variable names
// consulted when resolving the default level.
func RegisterEnvVars(names []string) {
	settings.Default().RegisterEnvVars(names)
}

// RegisterLoggerName registers the name GetLogger falls back to when
// called without one.
func RegisterLoggerName(name string) {
	settings.Default().RegisterLoggerName(name)
}

// RegisterPropagate registers the propagate default for newly created
// loggers.
func RegisterPropagate(propagate bool) {
	settings.Default().RegisterPropagate(propagate)
}

// RegisterCompatibilityMode toggles the permissive legacy behaviors:
// non-positive custom levels and root fallback on failed name
// inference.
func RegisterCompatibilityMode(enabled bool) {
	settings.Default().RegisterCompatibilityMode(enabled)
	core.DefaultLevels().SetCompat(enabled)
}

// RegisterPortHandlers registers the Extend default for porting the
// old root's handlers.
func RegisterPortHandlers(port bool) {
	settings.Default().RegisterPortHandlers(port)
}

// RegisterPortLevel registers the Extend default for porting the old
// root's level.
func RegisterPortLevel(port bool) {
	settings.Default().RegisterPortLevel(port)
}

// RegisterReplaceRoot registers the Extend default for replacing a
// foreign root.
func RegisterReplaceRoot(replace bool) {
	settings.Default().RegisterReplaceRoot(replace)
}

// DetermineLevel resolves a level name from a CLI value, the
// registered env vars and the registered default, in that order.
func DetermineLevel(cli, rootFallback string) string {
	return settings.Default().DetermineLevel(cli, rootFallback)
}

// SafeLog writes directly to the process's original stderr, bypassing
// the tree entirely. It never panics, whatever state the machinery is
// in.
func SafeLog(msg string) {
	core.SafeLog(msg)
}

// SafeLogf is SafeLog with formatting.
func SafeLogf(format string, args ...interface{}) {
	core.SafeLogf(format, args...)
}

// Package-level convenience functions using the root logger

// Test emits at TEST severity via the root logger.
func Test(msg string) { rootOrSafe(msg, func(l *Logger) { l.Test(msg) }) }

// Trace emits at TRACE severity via the root logger.
func Trace(msg string) { rootOrSafe(msg, func(l *Logger) { l.Trace(msg) }) }

// Debug emits at DEBUG severity via the root logger.
func Debug(msg string) { rootOrSafe(msg, func(l *Logger) { l.Debug(msg) }) }

// Detail emits at DETAIL severity via the root logger.
func Detail(msg string) { rootOrSafe(msg, func(l *Logger) { l.Detail(msg) }) }

// Info emits at INFO severity via the root logger.
func Info(msg string) { rootOrSafe(msg, func(l *Logger) { l.Info(msg) }) }

// Brief emits at BRIEF severity via the root logger.
func Brief(msg string) { rootOrSafe(msg, func(l *Logger) { l.Brief(msg) }) }

// Warning emits at WARNING severity via the root logger.
func Warning(msg string) { rootOrSafe(msg, func(l *Logger) { l.Warning(msg) }) }

// Error emits at ERROR severity via the root logger.
func Error(msg string) { rootOrSafe(msg, func(l *Logger) { l.Error(msg) }) }

// Critical emits at CRITICAL severity via the root logger.
func Critical(msg string) { rootOrSafe(msg, func(l *Logger) { l.Critical(msg) }) }

// rootOrSafe routes through the root logger, falling back to the safe
// path when the root slot holds a foreign node the host asked us not
// to replace.
func rootOrSafe(msg string, emit func(*Logger)) {
	if root := defaultRegistry.Root(); root != nil {
		emit(root)
		return
	}
	core.SafeLog(msg)
}
