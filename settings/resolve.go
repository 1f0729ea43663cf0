package settings

import (
	"os"
	"strings"
)

// DetermineLevel resolves an effective configured level name from the
// standard precedence chain:
//
//	explicit CLI value > first non-empty env var from envVars (in
//	order) > rootFallback > registeredDefault
//
// Pure apart from reading the listed environment variables. The result
// is the canonical uppercase name; it is not validated against a level
// registry, since callers may resolve names registered later.
func DetermineLevel(cli string, envVars []string, rootFallback, registeredDefault string) string {
	if cli != "" {
		return strings.ToUpper(cli)
	}
	for _, name := range envVars {
		if v := os.Getenv(name); v != "" {
			return strings.ToUpper(v)
		}
	}
	if rootFallback != "" {
		return strings.ToUpper(rootFallback)
	}
	return strings.ToUpper(registeredDefault)
}

// DetermineLevel resolves a level name using this registry's env var
// list and registered default.
func (r *Registry) DetermineLevel(cli, rootFallback string) string {
	return DetermineLevel(cli, r.EnvVars(), rootFallback, r.DefaultLevel())
}
