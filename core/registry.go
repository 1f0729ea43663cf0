package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// builtinLevels is the severity table every LevelRegistry starts from.
var builtinLevels = map[string]Level{
	"TEST":     TestLevel,
	"TRACE":    TraceLevel,
	"DEBUG":    DebugLevel,
	"DETAIL":   DetailLevel,
	"INFO":     InfoLevel,
	"BRIEF":    BriefLevel,
	"WARNING":  WarnLevel,
	"ERROR":    ErrorLevel,
	"CRITICAL": CriticalLevel,
	"SILENT":   SilentLevel,
}

// LevelRegistry is a bidirectional name ↔ value map for severities.
// Registration is rare and guarded by a mutex; lookups take a read
// lock only. The zero value is not usable; call NewLevelRegistry.
type LevelRegistry struct {
	mu      sync.RWMutex
	byName  map[string]Level
	byValue map[Level]string
	compat  bool
}

// NewLevelRegistry returns a registry pre-seeded with the builtin
// severity table.
func NewLevelRegistry() *LevelRegistry {
	r := &LevelRegistry{}
	r.reset()
	return r
}

func (r *LevelRegistry) reset() {
	r.byName = make(map[string]Level, len(builtinLevels))
	r.byValue = make(map[Level]string, len(builtinLevels))
	for name, value := range builtinLevels {
		r.byName[name] = value
		r.byValue[value] = name
	}
}

// SetCompat toggles compatibility mode, which matches legacy permissive
// behavior by allowing non-positive level values to be registered.
func (r *LevelRegistry) SetCompat(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.compat = enabled
}

// Compat reports whether compatibility mode is active.
func (r *LevelRegistry) Compat() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.compat
}

// Register associates name with value. The name is uppercased and must
// be unused or already bound to the same value; re-registering an
// identical pair is a no-op. A value already bound to a different name
// is rejected rather than silently aliased. Values <= 0 are rejected
// unless compatibility mode is active, because they would collide with
// the inherit sentinel.
func (r *LevelRegistry) Register(value Level, name string) error {
	name = strings.ToUpper(name)
	if name == "" {
		return fmt.Errorf("%w: empty level name", ErrInvalidLevelValue)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if value <= 0 && !r.compat {
		return fmt.Errorf("%w: level %q has value %d; values must be > 0 "+
			"to avoid inherit-sentinel collisions", ErrInvalidLevelValue,
			name, value)
	}
	if existing, ok := r.byName[name]; ok {
		if existing == value {
			return nil
		}
		return fmt.Errorf("%w: level %q is already registered as %d "+
			"(requested %d)", ErrInvalidLevelValue, name, existing, value)
	}
	if existing, ok := r.byValue[value]; ok {
		return fmt.Errorf("%w: value %d is already registered as %q "+
			"(requested name %q)", ErrInvalidLevelValue, value, existing,
			name)
	}

	r.byName[name] = value
	r.byValue[value] = name
	return nil
}

// Number resolves a level name (case-insensitive) or a decimal value
// string to its numeric level. Decimal strings pass through unchecked,
// matching the legacy integer passthrough.
func (r *LevelRegistry) Number(nameOrValue string) (Level, error) {
	if n, err := strconv.Atoi(nameOrValue); err == nil {
		return Level(n), nil
	}

	r.mu.RLock()
	value, ok := r.byName[strings.ToUpper(nameOrValue)]
	r.mu.RUnlock()
	if !ok {
		return Inherit, fmt.Errorf("%w: %q", ErrUnknownLevel, nameOrValue)
	}
	return value, nil
}

// Name returns the canonical uppercase name for value. Unknown values
// render as "Level N", matching legacy display conventions.
func (r *LevelRegistry) Name(value Level) string {
	r.mu.RLock()
	name, ok := r.byValue[value]
	r.mu.RUnlock()
	if !ok {
		return "Level " + strconv.Itoa(int(value))
	}
	return name
}

// NameStrict returns the canonical name for value, or ErrUnknownLevel
// when the value is not registered.
func (r *LevelRegistry) NameStrict(value Level) (string, error) {
	r.mu.RLock()
	name, ok := r.byValue[value]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownLevel, value)
	}
	return name, nil
}

// Names returns all registered level names ordered from most to least
// verbose.
func (r *LevelRegistry) Names() []string {
	r.mu.RLock()
	values := make([]Level, 0, len(r.byValue))
	for v := range r.byValue {
		values = append(values, v)
	}
	r.mu.RUnlock()

	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = r.Name(v)
	}
	return names
}

// Snapshot returns a copy of the current name table, suitable for
// restoring after a test that registers throwaway levels.
func (r *LevelRegistry) Snapshot() map[string]Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Level, len(r.byName))
	for name, value := range r.byName {
		out[name] = value
	}
	return out
}

// Restore replaces the registry contents with a snapshot previously
// taken with Snapshot.
func (r *LevelRegistry) Restore(snapshot map[string]Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName = make(map[string]Level, len(snapshot))
	r.byValue = make(map[Level]string, len(snapshot))
	for name, value := range snapshot {
		r.byName[name] = value
		r.byValue[value] = name
	}
}

// Reset restores the builtin severity table, discarding custom levels.
func (r *LevelRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reset()
}

var defaultLevels = NewLevelRegistry()

// DefaultLevels returns the process-wide level registry used by
// Level.String and by loggers that are not given an explicit one.
func DefaultLevels() *LevelRegistry {
	return defaultLevels
}
