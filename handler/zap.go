package handler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/apathetic-tools/alog/core"
)

// ZapHandler forwards entries into an existing zapcore.Core, so host
// applications already running a zap pipeline can keep their encoders
// and sinks while the logger tree does the routing and level
// resolution.
type ZapHandler struct {
	zc zapcore.Core
}

// NewZapHandler creates a handler that writes through the given zap
// core.
func NewZapHandler(zc zapcore.Core) *ZapHandler {
	return &ZapHandler{zc: zc}
}

// Handle converts the entry to a zapcore.Entry and writes it when the
// wrapped core's own level check passes.
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ce := h.zc.Check(zapcore.Entry{
		Level:      zapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.Logger,
		Message:    entry.Message,
	}, nil)
	if ce == nil {
		return nil
	}

	ce.Write(zapFields(entry.Fields)...)
	return nil
}

// Close syncs the wrapped core.
func (h *ZapHandler) Close() error {
	return h.zc.Sync()
}

// zapLevel maps the severity scale onto zap's. The extra verbose tiers
// collapse into DEBUG and the routine tiers into INFO; CRITICAL maps
// to zap's fatal severity label, which does not trigger an exit when
// written through a bare core.
func zapLevel(l core.Level) zapcore.Level {
	switch {
	case l <= core.DebugLevel:
		return zapcore.DebugLevel
	case l <= core.BriefLevel:
		return zapcore.InfoLevel
	case l <= core.WarnLevel:
		return zapcore.WarnLevel
	case l <= core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel
	}
}

// zapFields converts bridge fields into zap fields.
func zapFields(fields []core.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case core.StringType, core.ErrorType:
			out = append(out, zap.String(f.Key, f.Str))
		case core.Int64Type:
			out = append(out, zap.Int64(f.Key, f.Int64))
		case core.Float64Type:
			out = append(out, zap.Float64(f.Key, f.Float64))
		case core.BoolType:
			out = append(out, zap.Bool(f.Key, f.Int64 == 1))
		case core.TimeType:
			out = append(out, zap.Time(f.Key, time.Unix(0, f.Int64)))
		case core.DurationType:
			out = append(out, zap.Duration(f.Key, time.Duration(f.Int64)))
		default:
			out = append(out, zap.Any(f.Key, f.Any))
		}
	}
	return out
}
