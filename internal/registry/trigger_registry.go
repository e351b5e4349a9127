package registry

import (
	"sync"

	"github.com/chesedcore/Evesses/internal/model"
)

// TriggerRegistry holds the active-trigger set, iterated in registration
// order when matching a single event (spec.md §5).
type TriggerRegistry struct {
	mu     sync.Mutex
	active []*model.Trigger
	byID   map[string]*model.Trigger
	unsubs map[string]func()
}

// NewTriggerRegistry returns an empty registry.
func NewTriggerRegistry() *TriggerRegistry {
	return &TriggerRegistry{byID: make(map[string]*model.Trigger)}
}

// Register adds t to the active set and wires its lifetime handle (if any)
// to unregister it on expiry (spec.md §4.4).
func (r *TriggerRegistry) Register(t *model.Trigger) {
	r.mu.Lock()
	r.active = append(r.active, t)
	r.byID[t.ID] = t
	r.mu.Unlock()

	if t.Lifetime != nil {
		unsub := t.Lifetime.SubscribeExpiry(func() { r.Unregister(t.ID) })
		r.mu.Lock()
		if r.unsubs == nil {
			r.unsubs = make(map[string]func())
		}
		r.unsubs[t.ID] = unsub
		r.mu.Unlock()
	}
}

// Unregister removes the trigger with the given ID from the active set.
func (r *TriggerRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return
	}
	for i, t := range r.active {
		if t.ID == id {
			r.active = append(r.active[:i], r.active[i+1:]...)
			break
		}
	}
	delete(r.byID, id)
	delete(r.unsubs, id)
}

// MatchAll returns every active trigger that matches ev, in registration
// order (spec.md §4.1 Commit phase step 4).
func (r *TriggerRegistry) MatchAll(ev model.TimingEvent) []*model.Trigger {
	r.mu.Lock()
	snapshot := make([]*model.Trigger, len(r.active))
	copy(snapshot, r.active)
	r.mu.Unlock()

	out := make([]*model.Trigger, 0)
	for _, t := range snapshot {
		if t.Matches(ev) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns how many triggers are currently active.
func (r *TriggerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
