package logger

import (
	"errors"
	"strings"
	"testing"

	"github.com/apathetic-tools/alog/core"
)

func TestGetLogger_ExplicitName(t *testing.T) {
	log, err := GetLogger("pkgtest.explicit")
	if err != nil {
		t.Fatalf("GetLogger error = %v", err)
	}
	if log.Name() != "pkgtest.explicit" {
		t.Errorf("Name() = %q", log.Name())
	}
}

func TestGetLogger_InferredName(t *testing.T) {
	log, err := GetLogger()
	if err != nil {
		t.Fatalf("GetLogger() error = %v", err)
	}
	if !strings.HasSuffix(log.Name(), "alog.logger") {
		t.Errorf("inferred name = %q, want suffix alog.logger", log.Name())
	}
}

func TestRegisterLevel_Conflict(t *testing.T) {
	if err := RegisterLevel(33, "PKGTESTLEVEL"); err != nil {
		t.Fatalf("RegisterLevel error = %v", err)
	}
	// Same pair again is a no-op.
	if err := RegisterLevel(33, "PKGTESTLEVEL"); err != nil {
		t.Errorf("idempotent re-register error = %v", err)
	}
	// Same name, new value conflicts.
	if err := RegisterLevel(34, "PKGTESTLEVEL"); !errors.Is(err, core.ErrInvalidLevelValue) {
		t.Errorf("conflicting re-register error = %v, want ErrInvalidLevelValue", err)
	}
}

func TestDetermineLevel_Precedence(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARNING")

	if got := DetermineLevel("debug", ""); got != "DEBUG" {
		t.Errorf("CLI value: got %q, want DEBUG", got)
	}
	if got := DetermineLevel("", ""); got != "WARNING" {
		t.Errorf("env value: got %q, want WARNING", got)
	}

	t.Setenv("LOG_LEVEL", "")
	if got := DetermineLevel("", "brief"); got != "BRIEF" {
		t.Errorf("root fallback: got %q, want BRIEF", got)
	}
	if got := DetermineLevel("", ""); got != "DETAIL" {
		t.Errorf("registered default: got %q, want DETAIL", got)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("critical")
	if err != nil {
		t.Fatalf("ParseLevel error = %v", err)
	}
	if level != CriticalLevel {
		t.Errorf("ParseLevel(critical) = %v", level)
	}

	if _, err := ParseLevel("NOSUCH"); !errors.Is(err, core.ErrUnknownLevel) {
		t.Errorf("ParseLevel(NOSUCH) error = %v, want ErrUnknownLevel", err)
	}

	// Decimal strings pass through.
	level, err = ParseLevel("35")
	if err != nil {
		t.Fatalf("ParseLevel(35) error = %v", err)
	}
	if level != 35 {
		t.Errorf("ParseLevel(35) = %v", level)
	}
}
