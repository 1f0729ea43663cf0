package core

import (
	"fmt"
	"os"
	"strings"
)

// processStderr is the process's original error stream, captured before
// any test or host application can swap os.Stderr for capture. The safe
// logging path writes here so it keeps working even when the main
// machinery, or the streams it points at, are in a corrupted state.
var processStderr = os.Stderr

// safeTraceEnabled gates internal diagnostics (set SAFE_TRACE=1).
var safeTraceEnabled = func() bool {
	switch strings.ToLower(os.Getenv("SAFE_TRACE")) {
	case "1", "true", "yes":
		return true
	}
	return false
}()

// SafeLog is the emergency logging path. It bypasses the registry and
// handler machinery entirely, writes directly to the original stderr,
// and never panics or returns an error.
func SafeLog(msg string) {
	defer func() {
		_ = recover()
	}()
	if _, err := fmt.Fprintln(processStderr, msg); err != nil {
		// Final guardrail: best-effort raw write.
		_, _ = processStderr.WriteString("[INTERNAL] " + msg + "\n")
	}
}

// SafeLogf is SafeLog with printf formatting.
func SafeLogf(format string, args ...interface{}) {
	defer func() {
		_ = recover()
	}()
	SafeLog(fmt.Sprintf(format, args...))
}

// SafeTrace emits an internal diagnostic via SafeLog when the
// SAFE_TRACE environment variable is set. The library uses it for its
// own tracing instead of the tree it mutates.
func SafeTrace(context string, details string) {
	if !safeTraceEnabled {
		return
	}
	SafeLog("[SAFE_TRACE] " + context + " " + details)
}
