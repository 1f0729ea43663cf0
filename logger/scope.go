package logger

import (
	"github.com/apathetic-tools/alog/core"
)

// UseLevel runs fn with the logger temporarily set to level and
// restores the previous explicit level on every exit path, panics
// included. The previous value may be the inherit sentinel, which is
// why restoration bypasses validation.
func (l *Logger) UseLevel(level core.Level, fn func()) error {
	prev := l.Level()
	if err := l.setLevel(level, false); err != nil {
		return err
	}
	defer l.SetLevelValue(prev)
	fn()
	return nil
}

// UseLevelName is UseLevel with name resolution.
func (l *Logger) UseLevelName(name string, fn func()) error {
	level, err := l.reg.levels.Number(name)
	if err != nil {
		return err
	}
	return l.UseLevel(level, fn)
}

// UseMinimumLevel runs fn with the logger at least as verbose as
// level, restoring afterwards. When the logger is already as verbose,
// fn runs with nothing changed.
func (l *Logger) UseMinimumLevel(level core.Level, fn func()) error {
	prev := l.Level()
	if err := l.setLevel(level, true); err != nil {
		return err
	}
	defer l.SetLevelValue(prev)
	fn()
	return nil
}

// UsePropagate runs fn with the propagate flag temporarily set,
// restoring afterwards.
func (l *Logger) UsePropagate(propagate bool, fn func()) {
	prev := l.Propagate()
	l.SetPropagate(propagate)
	defer l.SetPropagate(prev)
	fn()
}
