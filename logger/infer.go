package logger

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/apathetic-tools/alog/core"
)

// InferLogger returns a logger named after the calling package, with
// slashes in the import path turned into dots so the package hierarchy
// becomes a logger hierarchy. Precedence: a name registered via
// settings wins over inference; when inference fails and compatibility
// mode is on, the root logger is returned; otherwise
// core.ErrMissingLoggerName.
func (r *Registry) InferLogger() (*Logger, error) {
	return r.inferLogger(2)
}

func (r *Registry) inferLogger(skip int) (*Logger, error) {
	if name, ok := r.settings.LoggerName(); ok {
		return r.GetLogger(name), nil
	}
	if pkg := callerPackage(skip + 1); pkg != "" {
		return r.GetLogger(pkg), nil
	}
	if r.settings.CompatibilityMode() {
		if root := r.Root(); root != nil {
			return root, nil
		}
	}
	return nil, fmt.Errorf("%w: no name given and caller package could not be determined", core.ErrMissingLoggerName)
}

// callerPackage resolves the import path of the caller skip frames up,
// with '/' rewritten to '.'. Returns "" when the frame cannot be
// resolved.
func callerPackage(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	// Function names look like "path/to/pkg.Func" or
	// "path/to/pkg.(*Type).Method"; the package path is everything
	// before the first dot after the last slash.
	name := fn.Name()
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return ""
	}
	pkg := name[:slash+1+dot]
	return strings.ReplaceAll(pkg, "/", ".")
}
