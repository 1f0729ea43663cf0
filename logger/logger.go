package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/formatter"
	"github.com/apathetic-tools/alog/handler"
)

// Logger is a node in the hierarchical logger tree. Loggers are
// created through a Registry (never directly) and live for the process
// lifetime. Level, propagate and disabled are atomics, so the hot path
// reads them without locking; mutations serialize through the owning
// registry's lock. A configuration change on another goroutine need
// not be visible immediately — last writer wins.
type Logger struct {
	name string
	reg  *Registry

	level     atomic.Int32 // core.Level; core.Inherit when unset
	propagate atomic.Bool
	disabled  atomic.Bool

	handlers     atomic.Pointer[[]handler.Handler]
	enableColor  atomic.Bool
	handlersOnce atomic.Bool // set after the first EnsureHandlers
}

// newLogger constructs a logger bound to reg. Callers go through
// Registry.GetLogger, which also ensures the root exists.
func newLogger(reg *Registry, name string) *Logger {
	l := &Logger{name: name, reg: reg}
	l.level.Store(int32(core.Inherit))
	return l
}

// Name returns the logger's dot-separated path. The root is "".
func (l *Logger) Name() string { return l.name }

// Level returns the explicit level, core.Inherit when the logger
// defers to its ancestors.
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevelValue stores a level without validation, core.Inherit
// included. Most callers want SetLevel.
func (l *Logger) SetLevelValue(level core.Level) {
	l.level.Store(int32(level))
}

// SetLevel sets the explicit level. The inherit sentinel and other
// non-positive values are rejected; use SetLevelValue to make a
// non-root logger inherit again.
func (l *Logger) SetLevel(level core.Level) error {
	return l.setLevel(level, false)
}

// SetLevelName resolves a level name or decimal string through the
// registry's level table and sets it.
func (l *Logger) SetLevelName(name string) error {
	level, err := l.reg.levels.Number(name)
	if err != nil {
		return err
	}
	return l.setLevel(level, false)
}

// SetMinimumLevel lowers the level to at most the given value. When
// the current effective level is already as verbose or more, this is a
// no-op — it never makes the logger quieter.
func (l *Logger) SetMinimumLevel(level core.Level) error {
	return l.setLevel(level, true)
}

// SetMinimumLevelName is SetMinimumLevel with name resolution.
func (l *Logger) SetMinimumLevelName(name string) error {
	level, err := l.reg.levels.Number(name)
	if err != nil {
		return err
	}
	return l.setLevel(level, true)
}

func (l *Logger) setLevel(level core.Level, minimum bool) error {
	if level <= core.Inherit && !l.reg.levels.Compat() {
		return fmt.Errorf("%w: cannot set level %d explicitly", core.ErrInvalidLevelValue, level)
	}
	if minimum && level >= l.EffectiveLevel() {
		return nil
	}
	l.level.Store(int32(level))
	return nil
}

// EffectiveLevel returns the explicit level if set, else the nearest
// ancestor's explicit level, walking up to the root. The root always
// resolves to a concrete level.
func (l *Logger) EffectiveLevel() core.Level {
	if level := core.Level(l.level.Load()); level != core.Inherit {
		return level
	}
	return l.reg.effectiveLevelAbove(l.name)
}

// Propagate reports whether records are forwarded to ancestor
// handlers instead of this logger's own.
func (l *Logger) Propagate() bool { return l.propagate.Load() }

// SetPropagate sets the propagate flag. A propagating logger attaches
// no handlers of its own.
func (l *Logger) SetPropagate(propagate bool) { l.propagate.Store(propagate) }

// Disabled reports whether the logger drops every record.
func (l *Logger) Disabled() bool { return l.disabled.Load() }

// SetDisabled sets the disabled flag.
func (l *Logger) SetDisabled(disabled bool) { l.disabled.Store(disabled) }

// Handlers returns a copy of the attached handler list.
func (l *Logger) Handlers() []handler.Handler {
	hs := l.handlers.Load()
	if hs == nil {
		return nil
	}
	out := make([]handler.Handler, len(*hs))
	copy(out, *hs)
	return out
}

// AddHandler attaches a handler. A handler already writing to the same
// streams is not attached twice.
func (l *Logger) AddHandler(h handler.Handler) {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()
	l.addHandlerLocked(h)
}

func (l *Logger) addHandlerLocked(h handler.Handler) {
	current := l.Handlers()
	if containsStreamMatch(current, h) {
		return
	}
	current = append(current, h)
	l.handlers.Store(&current)
	l.handlersOnce.Store(true)
}

// ClearHandlers detaches all handlers.
func (l *Logger) ClearHandlers() {
	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()
	var empty []handler.Handler
	l.handlers.Store(&empty)
}

// EnsureHandlers guarantees the logger's handler set matches its
// configuration: a propagating non-root logger carries no handlers;
// any other logger carries exactly one dual-stream handler bound to
// the current stdout/stderr. When the stream identities have changed
// since the last attach (output capture swapped them, say), the stale
// handler is torn down and rebuilt rather than left writing into the
// old stream. Idempotent and cheap when nothing changed.
func (l *Logger) EnsureHandlers() {
	if l.Propagate() && l.name != "" {
		return
	}

	stdout, stderr := l.reg.currentStdout(), l.reg.currentStderr()
	if hs := l.handlers.Load(); hs != nil && l.handlersOnce.Load() {
		for _, h := range *hs {
			if sh, ok := h.(handler.StreamHandler); ok && sh.MatchesStreams(stdout, stderr) {
				return
			}
		}
	}

	l.reg.mu.Lock()
	defer l.reg.mu.Unlock()
	l.ensureHandlersLocked()
}

func (l *Logger) ensureHandlersLocked() {
	if l.Propagate() && l.name != "" {
		return
	}
	stdout, stderr := l.reg.currentStdout(), l.reg.currentStderr()

	// Drop stream handlers bound to stale streams, keep everything else.
	kept := make([]handler.Handler, 0, 1)
	matched := false
	for _, h := range l.Handlers() {
		sh, ok := h.(handler.StreamHandler)
		if ok && !sh.MatchesStreams(stdout, stderr) {
			_ = sh.Close()
			continue
		}
		if ok {
			matched = true
		}
		kept = append(kept, h)
	}
	if !matched {
		enable := handler.DetermineColorEnabled(stdout)
		kept = append(kept, handler.NewDualStreamHandler(handler.DualStreamConfig{
			Stdout: stdout,
			Stderr: stderr,
			Formatter: formatter.NewTagFormatter(formatter.Config{
				EnableColor: enable,
				Levels:      l.reg.levels,
			}),
		}))
		l.enableColor.Store(enable)
	}
	l.handlers.Store(&kept)
	l.handlersOnce.Store(true)
}

// IsEnabledFor reports whether a record at the given level would be
// emitted.
func (l *Logger) IsEnabledFor(level core.Level) bool {
	return !l.Disabled() && level >= l.EffectiveLevel()
}

// Handle delivers an entry to this logger's own handlers, rebuilding
// them first if the output streams moved. Propagation across the tree
// happens in the emitting logger.
func (l *Logger) Handle(entry *core.Entry) error {
	l.EnsureHandlers()
	hs := l.handlers.Load()
	if hs == nil {
		return nil
	}
	for _, h := range *hs {
		if err := h.Handle(entry); err != nil {
			return err
		}
	}
	return nil
}

// Log emits a record at the given level. Fields arrive through the
// slog and zap bridges; the leveled methods are plain-message.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.IsEnabledFor(level) {
		return
	}
	l.log(level, msg, fields)
}

// LogDynamic emits at a level given by name or decimal string,
// resolving it through the level table first. Unknown names error
// instead of silently picking a default.
func (l *Logger) LogDynamic(levelName string, msg string) error {
	level, err := l.reg.levels.Number(levelName)
	if err != nil {
		return err
	}
	l.Log(level, msg)
	return nil
}

// log assumes the level gate already passed.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	l.dispatch(entry)
	core.PutEntry(entry)
}

// dispatch walks from this logger toward the root, delivering the
// entry to each visited node's handlers, continuing only while the
// visited node propagates. Absent names on the path are skipped.
func (l *Logger) dispatch(entry *core.Entry) {
	name := l.name
	var node Node = l
	for {
		if !node.Disabled() {
			if err := node.Handle(entry); err != nil {
				core.SafeTrace("logger.dispatch", err.Error())
			}
		}
		if name == "" || !node.Propagate() {
			return
		}
		next, nextName, ok := l.reg.nearestAncestor(name)
		if !ok {
			return
		}
		node, name = next, nextName
	}
}

// Test emits at TEST severity, the most verbose level.
func (l *Logger) Test(msg string) { l.Log(core.TestLevel, msg) }

// Trace emits at TRACE severity.
func (l *Logger) Trace(msg string) { l.Log(core.TraceLevel, msg) }

// Debug emits at DEBUG severity.
func (l *Logger) Debug(msg string) { l.Log(core.DebugLevel, msg) }

// Detail emits at DETAIL severity, between DEBUG and INFO.
func (l *Logger) Detail(msg string) { l.Log(core.DetailLevel, msg) }

// Info emits at INFO severity.
func (l *Logger) Info(msg string) { l.Log(core.InfoLevel, msg) }

// Brief emits at BRIEF severity, between INFO and WARNING.
func (l *Logger) Brief(msg string) { l.Log(core.BriefLevel, msg) }

// Warning emits at WARNING severity.
func (l *Logger) Warning(msg string) { l.Log(core.WarnLevel, msg) }

// Error emits at ERROR severity.
func (l *Logger) Error(msg string) { l.Log(core.ErrorLevel, msg) }

// Critical emits at CRITICAL severity.
func (l *Logger) Critical(msg string) { l.Log(core.CriticalLevel, msg) }

// Testf emits a formatted message at TEST severity.
func (l *Logger) Testf(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.TestLevel) {
		return
	}
	l.log(core.TestLevel, fmt.Sprintf(format, args...), nil)
}

// Tracef emits a formatted message at TRACE severity.
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf emits a formatted message at DEBUG severity.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Detailf emits a formatted message at DETAIL severity.
func (l *Logger) Detailf(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.DetailLevel) {
		return
	}
	l.log(core.DetailLevel, fmt.Sprintf(format, args...), nil)
}

// Infof emits a formatted message at INFO severity.
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Brieff emits a formatted message at BRIEF severity.
func (l *Logger) Brieff(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.BriefLevel) {
		return
	}
	l.log(core.BriefLevel, fmt.Sprintf(format, args...), nil)
}

// Warningf emits a formatted message at WARNING severity.
func (l *Logger) Warningf(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf emits a formatted message at ERROR severity.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf emits a formatted message at CRITICAL severity.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if !l.IsEnabledFor(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// ErrorIfNotDebug emits msg at ERROR severity, appending the error
// detail only when DEBUG is enabled. Quiet deployments get the short
// message; debugging sessions get the cause.
func (l *Logger) ErrorIfNotDebug(msg string, err error) {
	l.ifNotDebug(core.ErrorLevel, msg, err)
}

// CriticalIfNotDebug is ErrorIfNotDebug at CRITICAL severity.
func (l *Logger) CriticalIfNotDebug(msg string, err error) {
	l.ifNotDebug(core.CriticalLevel, msg, err)
}

func (l *Logger) ifNotDebug(level core.Level, msg string, err error) {
	if !l.IsEnabledFor(level) {
		return
	}
	if err != nil && l.IsEnabledFor(core.DebugLevel) {
		msg = msg + ": " + err.Error()
	}
	l.log(level, msg, nil)
}

// Colorize wraps text in the given ANSI color when this logger's
// output supports color, otherwise returns it unchanged. Useful for
// coloring fragments inside a message consistently with the tag
// styling.
func (l *Logger) Colorize(text, color string) string {
	l.EnsureHandlers()
	return formatter.Colorize(text, color, l.enableColor.Load())
}
