package logger

import (
	"github.com/apathetic-tools/alog/settings"
)

// ExtendOptions controls how Extend migrates a foreign root node.
// Build one with DefaultExtendOptions and override fields as needed.
type ExtendOptions struct {
	// ReplaceRoot permits swapping out a root node that is not already
	// a Logger. When false a foreign root is left untouched — some
	// hosts intentionally keep their own root type.
	ReplaceRoot bool
	// PortHandlers carries the old root's handler list onto the new
	// root verbatim. When false the new root gets a freshly built
	// dual-stream handler instead.
	PortHandlers bool
	// PortLevel carries the old root's explicit level. When false the
	// level is resolved from env vars and the registered default.
	PortLevel bool
}

// DefaultExtendOptions reads the three migration flags from a settings
// registry.
func DefaultExtendOptions(s *settings.Registry) ExtendOptions {
	return ExtendOptions{
		ReplaceRoot:  s.ReplaceRoot(),
		PortHandlers: s.PortHandlers(),
		PortLevel:    s.PortLevel(),
	}
}

// Extend makes sure the tree's root is a Logger, migrating whatever
// occupies the root slot according to the flags registered in
// settings. See ExtendWith.
func (r *Registry) Extend() (*Logger, bool) {
	return r.ExtendWith(DefaultExtendOptions(r.settings))
}

// ExtendWith makes sure the tree's root is a Logger:
//
//  1. No root yet: a fresh root logger is created (migrated=true).
//  2. Root already a Logger: no-op (migrated=false).
//  3. Foreign root and ReplaceRoot false: left untouched; the returned
//     logger is nil.
//  4. Foreign root otherwise: replaced by a Logger porting propagate
//     and disabled always, handlers iff PortHandlers, the explicit
//     level iff PortLevel.
//
// The "" registry entry is swapped atomically under the registry lock.
// Child nodes resolve ancestry by name, so they see the new root on
// their next effective-level walk with no reattachment. Code holding a
// direct reference to the old root instance keeps the old, now
// disconnected instance; that is a documented limitation. Re-invoking
// after a successful migration is a no-op.
func (r *Registry) ExtendWith(opts ExtendOptions) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes.Load("")
	if !ok {
		root := r.ensureRootLocked()
		return root.(*Logger), true
	}
	if lg, ok := n.(*Logger); ok {
		return lg, false
	}
	if !opts.ReplaceRoot {
		return nil, false
	}

	// replaceLocked resolves a concrete level for the root when the
	// ported one is inherit, so walks always terminate.
	return r.replaceLocked(n.(Node), opts.PortHandlers, opts.PortLevel), true
}
