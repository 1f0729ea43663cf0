package core

import (
	"os"
	"strings"
	"testing"
)

// swapProcessStderr points the safe path at a pipe for the duration of
// a test. The whole point of SafeLog is that it ignores os.Stderr
// swaps, so tests have to reach into the captured stream directly.
func swapProcessStderr(t *testing.T) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	old := processStderr
	processStderr = w
	t.Cleanup(func() {
		processStderr = old
		w.Close()
		r.Close()
	})
	return r
}

func TestSafeLog(t *testing.T) {
	r := swapProcessStderr(t)

	SafeLog("something went wrong")
	processStderr.Close()

	buf := make([]byte, 256)
	n, _ := r.Read(buf)
	if got := string(buf[:n]); !strings.Contains(got, "something went wrong") {
		t.Errorf("SafeLog output = %q", got)
	}
}

func TestSafeLogf(t *testing.T) {
	r := swapProcessStderr(t)

	SafeLogf("attempt %d failed", 3)
	processStderr.Close()

	buf := make([]byte, 256)
	n, _ := r.Read(buf)
	if got := string(buf[:n]); !strings.Contains(got, "attempt 3 failed") {
		t.Errorf("SafeLogf output = %q", got)
	}
}

func TestSafeLog_NeverPanics(t *testing.T) {
	old := processStderr
	processStderr = nil
	defer func() {
		processStderr = old
		if r := recover(); r != nil {
			t.Errorf("SafeLog panicked: %v", r)
		}
	}()

	SafeLog("writing to a nil stream")
}
