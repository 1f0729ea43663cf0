package logger

import (
	"errors"
	"testing"

	"github.com/apathetic-tools/alog/core"
)

func TestUseLevel_RestoresOnExit(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	log := reg.GetLogger("app")

	ran := false
	err := log.UseLevel(core.ErrorLevel, func() {
		ran = true
		if log.Level() != core.ErrorLevel {
			t.Errorf("Level() inside scope = %v, want ERROR", log.Level())
		}
	})
	if err != nil {
		t.Fatalf("UseLevel error = %v", err)
	}
	if !ran {
		t.Fatal("fn did not run")
	}
	if log.Level() != core.Inherit {
		t.Errorf("Level() after scope = %v, want Inherit restored", log.Level())
	}
}

func TestUseLevel_RestoresOnPanic(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	log := reg.GetLogger("app")

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to surface")
			}
		}()
		_ = log.UseLevel(core.ErrorLevel, func() {
			panic("boom")
		})
	}()

	if log.Level() != core.Inherit {
		t.Errorf("Level() after panic = %v, want Inherit restored", log.Level())
	}
}

func TestUseLevel_RejectsInvalid(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	log := reg.GetLogger("app")

	ran := false
	err := log.UseLevel(core.Inherit, func() { ran = true })
	if !errors.Is(err, core.ErrInvalidLevelValue) {
		t.Errorf("error = %v, want ErrInvalidLevelValue", err)
	}
	if ran {
		t.Error("fn ran despite invalid level")
	}
}

func TestUseLevelName(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	log := reg.GetLogger("app")

	err := log.UseLevelName("critical", func() {
		if log.Level() != core.CriticalLevel {
			t.Errorf("Level() inside scope = %v, want CRITICAL", log.Level())
		}
	})
	if err != nil {
		t.Fatalf("UseLevelName error = %v", err)
	}

	if err := log.UseLevelName("NOSUCH", func() {}); !errors.Is(err, core.ErrUnknownLevel) {
		t.Errorf("error = %v, want ErrUnknownLevel", err)
	}
}

func TestUseMinimumLevel(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	log := reg.GetLogger("app")

	// More verbose than the inherited DETAIL: applies, then restores.
	err := log.UseMinimumLevel(core.TraceLevel, func() {
		if log.EffectiveLevel() != core.TraceLevel {
			t.Errorf("EffectiveLevel() inside scope = %v, want TRACE", log.EffectiveLevel())
		}
	})
	if err != nil {
		t.Fatalf("UseMinimumLevel error = %v", err)
	}
	if log.Level() != core.Inherit {
		t.Errorf("Level() after scope = %v, want Inherit restored", log.Level())
	}

	// Quieter than the current effective level: nothing changes.
	if setErr := log.SetLevel(core.DebugLevel); setErr != nil {
		t.Fatal(setErr)
	}
	err = log.UseMinimumLevel(core.WarnLevel, func() {
		if log.EffectiveLevel() != core.DebugLevel {
			t.Errorf("EffectiveLevel() inside no-op scope = %v, want DEBUG", log.EffectiveLevel())
		}
	})
	if err != nil {
		t.Fatalf("UseMinimumLevel error = %v", err)
	}
	if log.Level() != core.DebugLevel {
		t.Errorf("Level() after no-op scope = %v, want DEBUG", log.Level())
	}
}

func TestUsePropagate(t *testing.T) {
	reg, _, _ := newTestRegistry(t)
	log := reg.GetLogger("app")

	log.UsePropagate(true, func() {
		if !log.Propagate() {
			t.Error("Propagate() inside scope = false, want true")
		}
	})
	if log.Propagate() {
		t.Error("Propagate() after scope = true, want false restored")
	}
}
