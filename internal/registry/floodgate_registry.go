// Package registry holds three of the engine's five mutable registries:
// the active-floodgate ordered list, the active-trigger set, and the
// timing history log. The other two, the constraint tracker and the scope
// stack, live in internal/model. This is component C of spec.md §2.
package registry

import (
	"sort"
	"sync"

	"github.com/chesedcore/Evesses/internal/model"
)

// FloodgateRegistry keeps the active floodgate list sorted by
// (layer asc, insertion_order asc) at all times (spec.md §3 invariant 1),
// the way the teacher's dag.Graph kept its node/edge adjacency sorted by
// registration — here repurposed from a declarative rule tree to a
// continuously-mutated interceptor list.
type FloodgateRegistry struct {
	mu       sync.Mutex
	active   []*model.Floodgate
	nextSeq  int
	byID     map[string]*model.Floodgate
	unsubs   map[string]func()
}

// NewFloodgateRegistry returns an empty registry.
func NewFloodgateRegistry() *FloodgateRegistry {
	return &FloodgateRegistry{
		byID:   make(map[string]*model.Floodgate),
		unsubs: make(map[string]func()),
	}
}

// Register inserts f into the sorted active list, assigning its
// insertion_index, and wires its lifetime handle (if any) to unregister
// it on expiry (spec.md §4.4).
func (r *FloodgateRegistry) Register(f *model.Floodgate) {
	r.mu.Lock()
	f.InsertionIndex = r.nextSeq
	r.nextSeq++
	pos := sort.Search(len(r.active), func(i int) bool {
		return model.Less(f, r.active[i])
	})
	r.active = append(r.active, nil)
	copy(r.active[pos+1:], r.active[pos:])
	r.active[pos] = f
	r.byID[f.ID] = f
	r.mu.Unlock()

	if f.Lifetime != nil {
		unsub := f.Lifetime.SubscribeExpiry(func() { r.Unregister(f.ID) })
		r.mu.Lock()
		r.unsubs[f.ID] = unsub
		r.mu.Unlock()
	}
}

// Unregister removes the floodgate with the given ID from the active list
// and drops its insertion-order record.
func (r *FloodgateRegistry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return
	}
	for i, f := range r.active {
		if f.ID == id {
			r.active = append(r.active[:i], r.active[i+1:]...)
			break
		}
	}
	delete(r.byID, id)
	delete(r.unsubs, id)
}

// Active returns a snapshot of the whole active list, sorted, across all
// phases and kinds. Callers must not mutate the returned slice's elements in a way
// that reorders the registry — the snapshot is a copy of the slice header
// only, elements are the live *model.Floodgate pointers.
func (r *FloodgateRegistry) Active() []*model.Floodgate {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Floodgate, len(r.active))
	copy(out, r.active)
	return out
}

// ForPhaseKind returns the active floodgates matching phase and kind, in
// sorted order — the iteration spec.md §4.1 step 2 and §4.2 walk.
func (r *FloodgateRegistry) ForPhaseKind(phase model.FloodgatePhase, kind model.FloodgateKind) []*model.Floodgate {
	all := r.Active()
	out := make([]*model.Floodgate, 0, len(all))
	for _, f := range all {
		if f.Phase == phase && f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

// Len returns how many floodgates are currently active.
func (r *FloodgateRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
