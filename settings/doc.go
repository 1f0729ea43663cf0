// Package settings holds process-wide logging defaults and the level
// resolution chain.
//
// A Registry is a flat set of Register/getter pairs. Every getter has
// a documented default that applies whenever the setting was never
// registered, so an empty Registry is fully usable and absence of a
// setting is never an error. Registries are injectable for test
// isolation; most applications use the shared Default() instance.
//
// DetermineLevel implements the precedence chain for the configured
// level: explicit CLI value, then the first non-empty environment
// variable from the registered list, then a caller-supplied fallback,
// then the registered default.
package settings
