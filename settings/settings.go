package settings

import "sync"

// Documented defaults, used whenever the corresponding setting is
// unset. Absence of a setting is never an error.
const (
	// DefaultLevel is the level name used when no CLI value, env var,
	// or registered default applies.
	DefaultLevel = "DETAIL"

	// DefaultPropagate is the propagate flag applied to new loggers.
	// False avoids duplicate root output.
	DefaultPropagate = false

	// DefaultCompatibilityMode restores legacy permissive behavior
	// (non-positive custom levels, root lookup for empty names).
	DefaultCompatibilityMode = false

	// DefaultPortHandlers controls whether root migration carries the
	// old root's handler list over verbatim.
	DefaultPortHandlers = true

	// DefaultPortLevel controls whether root migration carries the old
	// root's explicit level over.
	DefaultPortLevel = true

	// DefaultReplaceRoot controls whether a mismatched root is
	// replaced at all during migration.
	DefaultReplaceRoot = true
)

// DefaultEnvVars is the environment variable list consulted for the
// log level when none has been registered.
var DefaultEnvVars = []string{"LOG_LEVEL"}

// Registry holds process-wide logging defaults. Every setting is a flat
// Register/getter pair; getters fall back to the documented default
// when the setting was never registered. There is no cross-field
// validation. The zero value is ready to use.
type Registry struct {
	mu sync.RWMutex

	defaultLevel *string
	envVars      []string
	loggerName   *string
	propagate    *bool
	compatMode   *bool
	portHandlers *bool
	portLevel    *bool
	replaceRoot  *bool
}

// NewRegistry returns an empty settings registry; every getter reports
// its documented default until the setting is registered.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterDefaultLevel sets the level name used when no other source
// resolves one.
func (r *Registry) RegisterDefaultLevel(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultLevel = &name
}

// DefaultLevel returns the registered default level name, or
// DefaultLevel when unset.
func (r *Registry) DefaultLevel() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.defaultLevel != nil {
		return *r.defaultLevel
	}
	return DefaultLevel
}

// RegisterEnvVars sets the ordered list of environment variable names
// consulted for the log level. The first non-empty value wins.
func (r *Registry) RegisterEnvVars(names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envVars = append([]string(nil), names...)
}

// EnvVars returns the registered environment variable list, or
// DefaultEnvVars when unset.
func (r *Registry) EnvVars() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.envVars != nil {
		return append([]string(nil), r.envVars...)
	}
	return append([]string(nil), DefaultEnvVars...)
}

// RegisterLoggerName sets the name used when a logger is requested
// without one and caller inference fails.
func (r *Registry) RegisterLoggerName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggerName = &name
}

// LoggerName returns the registered logger name and whether one was
// registered.
func (r *Registry) LoggerName() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.loggerName != nil {
		return *r.loggerName, true
	}
	return "", false
}

// RegisterPropagate sets the propagate flag applied to new loggers.
func (r *Registry) RegisterPropagate(propagate bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.propagate = &propagate
}

// Propagate returns the registered propagate default, or
// DefaultPropagate when unset.
func (r *Registry) Propagate() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.propagate != nil {
		return *r.propagate
	}
	return DefaultPropagate
}

// RegisterCompatibilityMode toggles legacy-compatible behavior.
func (r *Registry) RegisterCompatibilityMode(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.compatMode = &enabled
}

// CompatibilityMode returns the registered compatibility mode, or
// DefaultCompatibilityMode when unset.
func (r *Registry) CompatibilityMode() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.compatMode != nil {
		return *r.compatMode
	}
	return DefaultCompatibilityMode
}

// RegisterPortHandlers sets the handler-porting flag for root
// migration.
func (r *Registry) RegisterPortHandlers(port bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.portHandlers = &port
}

// PortHandlers returns the registered handler-porting flag, or
// DefaultPortHandlers when unset.
func (r *Registry) PortHandlers() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.portHandlers != nil {
		return *r.portHandlers
	}
	return DefaultPortHandlers
}

// RegisterPortLevel sets the level-porting flag for root migration.
func (r *Registry) RegisterPortLevel(port bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.portLevel = &port
}

// PortLevel returns the registered level-porting flag, or
// DefaultPortLevel when unset.
func (r *Registry) PortLevel() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.portLevel != nil {
		return *r.portLevel
	}
	return DefaultPortLevel
}

// RegisterReplaceRoot sets whether root migration may replace a
// mismatched root at all. Host applications that install their own
// root type register false here.
func (r *Registry) RegisterReplaceRoot(replace bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replaceRoot = &replace
}

// ReplaceRoot returns the registered root-replacement flag, or
// DefaultReplaceRoot when unset.
func (r *Registry) ReplaceRoot() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.replaceRoot != nil {
		return *r.replaceRoot
	}
	return DefaultReplaceRoot
}

// Snapshot captures the registered state of every setting.
type Snapshot struct {
	defaultLevel *string
	envVars      []string
	loggerName   *string
	propagate    *bool
	compatMode   *bool
	portHandlers *bool
	portLevel    *bool
	replaceRoot  *bool
}

// Snapshot returns a copy of the current registered state, suitable
// for restoring after a test mutates process-wide settings.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{
		defaultLevel: r.defaultLevel,
		envVars:      append([]string(nil), r.envVars...),
		loggerName:   r.loggerName,
		propagate:    r.propagate,
		compatMode:   r.compatMode,
		portHandlers: r.portHandlers,
		portLevel:    r.portLevel,
		replaceRoot:  r.replaceRoot,
	}
}

// Restore replaces the registered state with a snapshot previously
// taken with Snapshot.
func (r *Registry) Restore(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultLevel = s.defaultLevel
	if s.envVars != nil {
		r.envVars = append([]string(nil), s.envVars...)
	} else {
		r.envVars = nil
	}
	r.loggerName = s.loggerName
	r.propagate = s.propagate
	r.compatMode = s.compatMode
	r.portHandlers = s.portHandlers
	r.portLevel = s.portLevel
	r.replaceRoot = s.replaceRoot
}

// Reset clears every registered setting back to its documented
// default.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaultLevel = nil
	r.envVars = nil
	r.loggerName = nil
	r.propagate = nil
	r.compatMode = nil
	r.portHandlers = nil
	r.portLevel = nil
	r.replaceRoot = nil
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide settings registry.
func Default() *Registry {
	return defaultRegistry
}
