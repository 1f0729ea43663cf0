package logger

import (
	"sync"

	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/handler"
)

// Node is the minimal surface a registry entry must provide. The
// registry stores Nodes rather than concrete loggers so a host
// application can install its own node type (typically a BasicNode) and
// have Extend migrate its state — level, propagate, disabled, handlers —
// onto a full Logger later.
type Node interface {
	// Name returns the node's dot-separated path. The root is "".
	Name() string

	// Level returns the node's explicit level, or core.Inherit when the
	// node defers to its ancestors.
	Level() core.Level

	// SetLevelValue stores a level without validation. core.Inherit is
	// accepted. Used when porting state between node instances; most
	// callers want Logger.SetLevel instead.
	SetLevelValue(level core.Level)

	// Propagate reports whether records are forwarded to ancestor
	// handlers.
	Propagate() bool
	SetPropagate(propagate bool)

	// Disabled nodes drop every record silently.
	Disabled() bool
	SetDisabled(disabled bool)

	// Handlers returns a copy of the attached handler list.
	Handlers() []handler.Handler
	AddHandler(h handler.Handler)
	ClearHandlers()

	// Handle delivers an entry to this node's own handlers only.
	// Propagation across the tree is the emitting logger's job.
	Handle(entry *core.Entry) error
}

// BasicNode is a plain mutex-guarded Node with no emission API of its
// own. Hosts that manage their root logger themselves install one via
// Registry.Install; Extend later ports its state onto a Logger.
type BasicNode struct {
	name string

	mu        sync.Mutex
	level     core.Level
	propagate bool
	disabled  bool
	handlers  []handler.Handler
}

// NewBasicNode creates a node with the given name, an inherited level
// and no handlers.
func NewBasicNode(name string) *BasicNode {
	return &BasicNode{name: name}
}

// Name returns the node's dot-separated path.
func (n *BasicNode) Name() string { return n.name }

// Level returns the explicit level, core.Inherit when unset.
func (n *BasicNode) Level() core.Level {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.level
}

// SetLevelValue stores a level without validation.
func (n *BasicNode) SetLevelValue(level core.Level) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.level = level
}

// Propagate reports whether records are forwarded to ancestors.
func (n *BasicNode) Propagate() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.propagate
}

// SetPropagate sets the propagate flag.
func (n *BasicNode) SetPropagate(propagate bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.propagate = propagate
}

// Disabled reports whether the node drops records.
func (n *BasicNode) Disabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.disabled
}

// SetDisabled sets the disabled flag.
func (n *BasicNode) SetDisabled(disabled bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.disabled = disabled
}

// Handlers returns a copy of the handler list.
func (n *BasicNode) Handlers() []handler.Handler {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]handler.Handler, len(n.handlers))
	copy(out, n.handlers)
	return out
}

// AddHandler appends a handler. A handler already writing to the same
// streams is not added twice.
func (n *BasicNode) AddHandler(h handler.Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if containsStreamMatch(n.handlers, h) {
		return
	}
	n.handlers = append(n.handlers, h)
}

// ClearHandlers removes all handlers.
func (n *BasicNode) ClearHandlers() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers = nil
}

// Handle delivers an entry to the node's own handlers.
func (n *BasicNode) Handle(entry *core.Entry) error {
	for _, h := range n.Handlers() {
		if err := h.Handle(entry); err != nil {
			return err
		}
	}
	return nil
}

// containsStreamMatch reports whether handlers already holds a handler
// for the same stream destinations as candidate. Non-stream handlers
// only match by identity.
func containsStreamMatch(handlers []handler.Handler, candidate handler.Handler) bool {
	cs, csOK := candidate.(handler.StreamHandler)
	for _, existing := range handlers {
		if existing == candidate {
			return true
		}
		if !csOK {
			continue
		}
		if es, ok := existing.(handler.StreamHandler); ok && es.MatchesStreams(cs.Streams()) {
			return true
		}
	}
	return false
}

// parentName strips the last dot segment; "a.b.c" → "a.b", "a" → "".
func parentName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[:i]
		}
	}
	return ""
}
