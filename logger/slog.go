package logger

import (
	"context"
	"log/slog"

	"github.com/apathetic-tools/alog/core"
)

// SlogBridge exposes a Logger as a slog.Handler so code written
// against log/slog flows through the tree — level gate, propagation
// and dual-stream routing included.
type SlogBridge struct {
	logger *Logger
	attrs  []core.Field
	group  string
}

// NewSlogBridge wraps the given logger.
func NewSlogBridge(l *Logger) *SlogBridge {
	return &SlogBridge{logger: l}
}

// Enabled reports whether the wrapped logger would emit at the given
// slog level.
func (s *SlogBridge) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.IsEnabledFor(slogLevelToCore(level))
}

// Handle converts the record to the tree's severity scale and emits it
// through the wrapped logger.
func (s *SlogBridge) Handle(_ context.Context, record slog.Record) error {
	fields := make([]core.Field, 0, len(s.attrs)+record.NumAttrs())
	fields = append(fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		fields = append(fields, slogAttrToField(s.group, a))
		return true
	})
	s.logger.Log(slogLevelToCore(record.Level), record.Message, fields...)
	return nil
}

// WithAttrs returns a bridge carrying additional attributes.
func (s *SlogBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, slogAttrToField(s.group, a))
	}
	return &SlogBridge{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a bridge that prefixes subsequent attribute keys
// with the group name.
func (s *SlogBridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]core.Field, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogBridge{
		logger: s.logger,
		attrs:  newAttrs,
		group:  newGroup,
	}
}

// slogLevelToCore maps slog's four levels onto the severity scale.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// slogAttrToField converts a slog.Attr to a core.Field, prepending the
// group prefix if present. Nested groups flatten into dotted keys.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return core.String(key, a.Value.String())
	case slog.KindInt64:
		return core.Int64(key, a.Value.Int64())
	case slog.KindFloat64:
		return core.Float64(key, a.Value.Float64())
	case slog.KindBool:
		return core.Bool(key, a.Value.Bool())
	case slog.KindTime:
		return core.Time(key, a.Value.Time())
	case slog.KindDuration:
		return core.Duration(key, a.Value.Duration())
	case slog.KindGroup:
		attrs := a.Value.Group()
		if len(attrs) > 0 {
			return slogAttrToField(key, attrs[0])
		}
		return core.Any(key, a.Value.Any())
	default:
		return core.Any(key, a.Value.Any())
	}
}
