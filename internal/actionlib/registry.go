// Package actionlib is a named registry of reusable model.ActionFuncs,
// adapted from the teacher's internal/action.Registry — the same
// register-once-panic-on-duplicate, lookup-by-string-key pattern, trimmed
// to Evesses' single typed action contract (spec.md §6) instead of the
// teacher's per-type Executor interface with its own Validate/Execute
// methods. Hosts are never required to use it: an Effect's Action field
// takes a model.ActionFunc directly, and this registry is only a
// convenience for hosts that want to name and share actions by key.
package actionlib

import (
	"fmt"
	"sync"

	"github.com/chesedcore/Evesses/internal/model"
)

// Registry maps action keys to their model.ActionFuncs.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]model.ActionFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]model.ActionFunc)}
}

// Register adds fn under key. Panics on duplicate key to surface
// misconfiguration early, the way the teacher's action.Registry does.
func (r *Registry) Register(key string, fn model.ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.actions[key]; exists {
		panic(fmt.Sprintf("actionlib: duplicate key %q", key))
	}
	r.actions[key] = fn
}

// Get returns the action registered under key.
func (r *Registry) Get(key string) (model.ActionFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.actions[key]
	if !ok {
		return nil, fmt.Errorf("actionlib: no action registered for key %q", key)
	}
	return fn, nil
}

// Keys returns all registered action keys.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.actions))
	for k := range r.actions {
		out = append(out, k)
	}
	return out
}
