package logger

import (
	"io"
	"testing"

	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/settings"
)

func newBenchRegistry() *Registry {
	return NewRegistry(RegistryConfig{
		Settings: settings.NewRegistry(),
		Levels:   core.NewLevelRegistry(),
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	})
}

// BenchmarkInfoExplicitLevel emits through a logger with its own level,
// so the gate is a single atomic load.
func BenchmarkInfoExplicitLevel(b *testing.B) {
	reg := newBenchRegistry()
	log := reg.GetLogger("bench")
	if err := log.SetLevel(core.InfoLevel); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("test message")
	}
}

// BenchmarkInfoInheritedLevel emits through a logger that resolves its
// level by walking to the root on every gate check.
func BenchmarkInfoInheritedLevel(b *testing.B) {
	reg := newBenchRegistry()
	log := reg.GetLogger("bench.sub.leaf")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Info("test message")
	}
}

// BenchmarkFilteredDebug measures the cost of a record the gate drops.
func BenchmarkFilteredDebug(b *testing.B) {
	reg := newBenchRegistry()
	log := reg.GetLogger("bench")
	if err := log.SetLevel(core.InfoLevel); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Debug("dropped")
	}
}

// BenchmarkInfof includes the fmt.Sprintf on the emission path.
func BenchmarkInfof(b *testing.B) {
	reg := newBenchRegistry()
	log := reg.GetLogger("bench")
	if err := log.SetLevel(core.InfoLevel); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		log.Infof("request %d handled", i)
	}
}
