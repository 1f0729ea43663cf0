package logger

import (
	"io"
	"os"
	"sync"

	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/settings"
)

// Registry is the process-wide name → node mapping plus the
// distinguished root node (name ""). Nodes are created lazily on first
// lookup and live for the process lifetime; Remove exists mainly for
// test isolation. One mutex serializes every mutation — root swap,
// node replacement, handler rebuild — so the tree is never torn; the
// node map is a sync.Map so lookups on the emission path take no lock.
type Registry struct {
	mu    sync.Mutex
	nodes sync.Map // string → Node

	settings *settings.Registry
	levels   *core.LevelRegistry

	// stdout/stderr are fixed test streams; nil means the live
	// os.Stdout/os.Stderr, re-read on every use so a swapped stream is
	// noticed.
	stdout io.Writer
	stderr io.Writer
}

// RegistryConfig holds configuration for a Registry.
type RegistryConfig struct {
	// Settings supplies defaults for level resolution and migration
	// flags (default: the process settings registry).
	Settings *settings.Registry
	// Levels resolves severity names (default: the process level
	// table).
	Levels *core.LevelRegistry
	// Stdout and Stderr pin the output streams, mainly for tests. When
	// nil the current os.Stdout/os.Stderr are consulted on every
	// handler build, which is what lets handlers follow stream swaps.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRegistry creates an empty registry. The root node is created on
// first lookup or extension.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Settings == nil {
		cfg.Settings = settings.Default()
	}
	if cfg.Levels == nil {
		cfg.Levels = core.DefaultLevels()
	}
	return &Registry{
		settings: cfg.Settings,
		levels:   cfg.Levels,
		stdout:   cfg.Stdout,
		stderr:   cfg.Stderr,
	}
}

// Settings returns the settings registry this registry resolves
// defaults from.
func (r *Registry) Settings() *settings.Registry { return r.settings }

// Levels returns the severity table this registry resolves names
// against.
func (r *Registry) Levels() *core.LevelRegistry { return r.levels }

func (r *Registry) currentStdout() io.Writer {
	if r.stdout != nil {
		return r.stdout
	}
	return os.Stdout
}

func (r *Registry) currentStderr() io.Writer {
	if r.stderr != nil {
		return r.stderr
	}
	return os.Stderr
}

// GetLogger returns the logger for name, creating it if absent. The
// empty name returns the root. A name bound to a foreign node type is
// replaced by a Logger carrying all of the old node's state, so hosts
// that pre-installed a BasicNode are upgraded in place.
func (r *Registry) GetLogger(name string) *Logger {
	if name == "" {
		return r.Root()
	}
	if n, ok := r.nodes.Load(name); ok {
		if lg, ok := n.(*Logger); ok {
			return lg
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureRootLocked()
	return r.getLoggerLocked(name)
}

func (r *Registry) getLoggerLocked(name string) *Logger {
	if n, ok := r.nodes.Load(name); ok {
		if lg, ok := n.(*Logger); ok {
			return lg
		}
		// Foreign node: replace it, porting every piece of state.
		return r.replaceLocked(n.(Node), true, true)
	}

	lg := newLogger(r, name)
	lg.SetPropagate(r.settings.Propagate())
	lg.ensureHandlersLocked()
	r.nodes.Store(name, lg)
	return lg
}

// Root returns the root logger, creating it if absent. When the root
// slot holds a foreign node installed by the host, Root leaves it
// untouched and returns nil; use Extend to migrate it.
func (r *Registry) Root() *Logger {
	if n, ok := r.nodes.Load(""); ok {
		if lg, ok := n.(*Logger); ok {
			return lg
		}
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	root := r.ensureRootLocked()
	lg, _ := root.(*Logger)
	return lg
}

// ensureRootLocked guarantees the "" slot is occupied, creating a
// fresh root logger when it is not. The root always gets a concrete
// level so inheritance walks terminate.
func (r *Registry) ensureRootLocked() Node {
	if n, ok := r.nodes.Load(""); ok {
		return n.(Node)
	}
	root := newLogger(r, "")
	root.SetLevelValue(r.resolvedRootLevel())
	root.ensureHandlersLocked()
	r.nodes.Store("", root)
	return root
}

// resolvedRootLevel resolves the root's initial level from CLI-less
// settings: env vars, then the registered default. A misregistered
// default name falls back to DETAIL rather than leaving the root
// inherit-only.
func (r *Registry) resolvedRootLevel() core.Level {
	name := r.settings.DetermineLevel("", "")
	level, err := r.levels.Number(name)
	if err != nil {
		core.SafeTrace("logger.registry", "default level "+name+" is not registered, falling back to DETAIL")
		return core.DetailLevel
	}
	return level
}

// replaceLocked swaps node for a fresh Logger in the registry,
// porting level and handlers according to the flags and propagate and
// disabled always.
func (r *Registry) replaceLocked(old Node, portHandlers, portLevel bool) *Logger {
	lg := newLogger(r, old.Name())
	lg.SetPropagate(old.Propagate())
	lg.SetDisabled(old.Disabled())
	if portLevel {
		lg.SetLevelValue(old.Level())
	}
	if old.Name() == "" && lg.Level() == core.Inherit {
		lg.SetLevelValue(r.resolvedRootLevel())
	}
	if portHandlers {
		for _, h := range old.Handlers() {
			lg.addHandlerLocked(h)
		}
	} else {
		lg.ensureHandlersLocked()
	}
	r.nodes.Store(old.Name(), lg)
	return lg
}

// Install places a caller-constructed node in the registry, replacing
// any existing node of the same name. This is how a host hands its own
// root (or any node) to the tree; Extend can migrate it later.
func (r *Registry) Install(n Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes.Store(n.Name(), n)
}

// Lookup returns the node currently bound to name without creating
// one.
func (r *Registry) Lookup(name string) (Node, bool) {
	n, ok := r.nodes.Load(name)
	if !ok {
		return nil, false
	}
	return n.(Node), true
}

// Remove deletes the node bound to name. Intended for test isolation;
// loggers otherwise live forever.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes.Delete(name)
}

// Reset drops every node including the root. The next lookup starts a
// fresh tree.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes.Range(func(key, _ interface{}) bool {
		r.nodes.Delete(key)
		return true
	})
}

// effectiveLevelAbove resolves the effective level for a node whose
// own level is inherit, walking ancestors by name stripping. Names
// with no registered node are skipped. Falls back to the resolved
// default when even the root inherits (a foreign root may).
func (r *Registry) effectiveLevelAbove(name string) core.Level {
	for name != "" {
		name = parentName(name)
		if n, ok := r.nodes.Load(name); ok {
			if level := n.(Node).Level(); level != core.Inherit {
				return level
			}
		}
	}
	return r.resolvedRootLevel()
}

// nearestAncestor returns the closest registered ancestor of name and
// its name. ok is false when no ancestor up to and including the root
// exists.
func (r *Registry) nearestAncestor(name string) (Node, string, bool) {
	for name != "" {
		name = parentName(name)
		if n, ok := r.nodes.Load(name); ok {
			return n.(Node), name, true
		}
	}
	return nil, "", false
}
