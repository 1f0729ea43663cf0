package logger_test

import (
	"fmt"
	"io"

	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/logger"
	"github.com/apathetic-tools/alog/settings"
)

// Look up a logger by name and emit. Records below WARNING go to
// stdout; INFO carries no tag.
func Example() {
	log, _ := logger.GetLogger("example.app")
	_ = log.SetLevel(logger.InfoLevel)

	log.Info("application started")
	log.Detail("suppressed at INFO")
	// Output:
	// application started
}

// Custom severities register once and resolve by name everywhere.
func ExampleRegisterLevel() {
	_ = logger.RegisterLevel(22, "NOTICE")

	log, _ := logger.GetLogger("example.notice")
	_ = log.SetLevel(logger.InfoLevel)
	_ = log.LogDynamic("NOTICE", "deployment complete")
	// Output:
	// deployment complete
}

// UseLevel quiets (or loudens) a stretch of code and restores the
// previous level afterwards, even on panic.
func ExampleLogger_UseLevel() {
	log, _ := logger.GetLogger("example.scoped")
	_ = log.SetLevel(logger.InfoLevel)

	_ = log.UseLevel(logger.ErrorLevel, func() {
		log.Info("hidden during the quiet stretch")
	})
	log.Info("visible again")
	// Output:
	// visible again
}

// A host that installed its own root node upgrades it in place; state
// is ported onto the new root.
func ExampleRegistry_Extend() {
	reg := logger.NewRegistry(logger.RegistryConfig{
		Settings: settings.NewRegistry(),
		Levels:   core.NewLevelRegistry(),
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	})

	foreign := logger.NewBasicNode("")
	foreign.SetLevelValue(logger.ErrorLevel)
	reg.Install(foreign)

	root, migrated := reg.Extend()
	fmt.Println(migrated, root.Level() == logger.ErrorLevel)

	_, migrated = reg.Extend()
	fmt.Println(migrated)
	// Output:
	// true true
	// false
}
